package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a profile from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		p, err := profile.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("parse backup: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		snap := &store.Snapshot{Timestamp: time.Now(), Profile: p}
		if err := st.SnapshotRepo().Save(context.Background(), snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}

		fmt.Printf("Imported profile %q (%d XP, %d packs)\n", p.Name, p.XP, len(p.StudyPacks))
		return nil
	},
}
