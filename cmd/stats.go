package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arnavsud/stethoquest/internal/level"
	"github.com/arnavsud/stethoquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No profile yet. Run stethoquest to get started.")
			return nil
		}
		p := snap.Profile
		info := level.ForXP(p.XP)

		fmt.Printf("%s\n", p.Name)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Level:          %d (%s), %.0f%% to next\n", info.Level, info.Name, info.ProgressPercent)
		fmt.Printf("XP:             %d\n", p.XP)
		fmt.Printf("StethoCoins:    %d\n", p.StethoCoins)
		fmt.Printf("Streak:         %d days\n", p.Streak)
		fmt.Printf("Badges:         %d\n", len(p.UnlockedBadges))

		packs := 0
		for _, sp := range p.StudyPacks {
			if !sp.Deleted {
				packs++
			}
		}
		fmt.Printf("Study packs:    %d\n", packs)
		fmt.Printf("Perfect quizzes: %d\n", p.PerfectQuizCompletions)
		fmt.Printf("Tutor questions: %d\n", p.QuestionsAskedCount)

		totals, err := st.EventRepo().AnswerTotals(ctx)
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		if totals.Total > 0 {
			fmt.Printf("Answers:        %d (%d correct, %.0f%%)\n",
				totals.Total, totals.Correct, float64(totals.Correct)/float64(totals.Total)*100)
		}
		return nil
	},
}
