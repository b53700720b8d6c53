package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zenpod/internal/bootstrap"
	sessiondomain "zenpod/internal/modules/session/domain"
	"zenpod/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "zenpod",
		Short:         "Pay-per-session scripture reader",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file path")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newScriptureCmd(&configPath))
	root.AddCommand(newUserCmd(&configPath))
	root.AddCommand(newSessionCmd(&configPath))
	root.AddCommand(newProgressCmd(&configPath))
	root.AddCommand(newAICmd(&configPath))
	root.AddCommand(newSpeechCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the zenpod terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newScriptureCmd(configPath *string) *cobra.Command {
	scripture := &cobra.Command{Use: "scripture", Short: "Scripture catalog commands"}

	scripture.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available scriptures",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			scriptures, err := app.CatalogCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(scriptures) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no scriptures")
				return nil
			}
			for _, s := range scriptures {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d chapters\n", s.ID, s.Category, s.Title, s.TotalChapters)
			}
			return nil
		},
	})

	var scriptureID int
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a scripture with its chapters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scriptureID <= 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.CatalogCLI.Get(context.Background(), scriptureID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %d\ntitle: %s\ncategory: %s\n", s.ID, s.Title, s.Category)
			if strings.TrimSpace(s.Description) != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "about: %s\n", s.Description)
			}
			for _, ch := range s.Chapters {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %d\t%s\n", ch.No, ch.Title)
			}
			return nil
		},
	}
	show.Flags().IntVar(&scriptureID, "id", 0, "scripture id")
	scripture.AddCommand(show)
	return scripture
}

func newUserCmd(configPath *string) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Anonymous identity commands"}

	user.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create a fresh anonymous user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			u, err := app.IdentityCLI.Create(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user created: %s (id=%d)\n", u.Nickname, u.ID)
			return nil
		},
	})

	user.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored identity, creating one when absent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			u, err := app.IdentityCLI.Ensure(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %d\nnickname: %s\ntotal_minutes: %d\n", u.ID, u.Nickname, u.TotalMinutes)
			return nil
		},
	})
	return user
}

func newSessionCmd(configPath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Reading session lifecycle"}

	var hours float64
	start := &cobra.Command{
		Use:   "start --hours <1|2>",
		Short: "Purchase and activate a reading session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			u, err := app.IdentityCLI.Ensure(context.Background())
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Purchase(context.Background(), hours, u.Token)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %d active=%t amount=¥%.0f demo=%t\n", out.SessionID, out.Active, out.AmountYuan, out.Demo)
			return nil
		},
	}
	start.Flags().Float64Var(&hours, "hours", 1, "session length in hours")
	session.AddCommand(start)

	var sessionID int
	status := &cobra.Command{
		Use:   "status --id <id>",
		Short: "Show remaining time for a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sessionID <= 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			st, err := app.SessionCLI.Status(context.Background(), sessionID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "active=%t paid=%t remaining=%s\n",
				st.Active, st.Paid, sessiondomain.FormatRemaining(st.Remaining))
			return nil
		},
	}
	status.Flags().IntVar(&sessionID, "id", 0, "session id")
	session.AddCommand(status)
	return session
}

func newProgressCmd(configPath *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Reading progress commands"}

	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the latest reading position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			u, err := app.IdentityCLI.Ensure(context.Background())
			if err != nil {
				return err
			}
			rec, err := app.ProgressCLI.Latest(context.Background(), u.Token)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "scripture=%d (%s) chapter=%d position=%.2f\n",
				rec.ScriptureID, rec.ScriptureTitle, rec.ChapterID, rec.Position)
			return nil
		},
	})

	var scriptureID, chapterID int
	var position float64
	save := &cobra.Command{
		Use:   "save --scripture-id <id> --chapter-id <id>",
		Short: "Save a reading position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scriptureID <= 0 || chapterID <= 0 {
				return fmt.Errorf("--scripture-id and --chapter-id are required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			u, err := app.IdentityCLI.Ensure(context.Background())
			if err != nil {
				return err
			}
			if err := app.ProgressCLI.Save(context.Background(), u.Token, scriptureID, chapterID, position); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress saved")
			return nil
		},
	}
	save.Flags().IntVar(&scriptureID, "scripture-id", 0, "scripture id")
	save.Flags().IntVar(&chapterID, "chapter-id", 0, "chapter id")
	save.Flags().Float64Var(&position, "position", 0, "scroll position in [0,1]")
	progress.AddCommand(save)
	return progress
}

func newAICmd(configPath *string) *cobra.Command {
	ai := &cobra.Command{Use: "ai", Short: "AI reading assistant"}

	var passageContext string
	explain := &cobra.Command{
		Use:   "explain <text>",
		Short: "Explain a passage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.AssistCLI.Explain(context.Background(), args[0], passageContext)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
			return nil
		},
	}
	explain.Flags().StringVar(&passageContext, "context", "", "surrounding passage context")
	ai.AddCommand(explain)

	var scriptureText string
	ask := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about a scripture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.AssistCLI.Ask(context.Background(), args[0], scriptureText)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
			return nil
		},
	}
	ask.Flags().StringVar(&scriptureText, "scripture-text", "", "scripture text the question is about")
	ai.AddCommand(ask)
	return ai
}

func newSpeechCmd(configPath *string) *cobra.Command {
	speech := &cobra.Command{Use: "speech", Short: "Speech engine commands"}

	speech.AddCommand(&cobra.Command{
		Use:   "voices",
		Short: "List engine voices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			voices, err := app.SpeechCLI.Voices(context.Background())
			if err != nil {
				return err
			}
			if len(voices) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no voices")
				return nil
			}
			for _, v := range voices {
				marker := ""
				if v.Default {
					marker = "\t(default)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%s\n", v.ID, v.Lang, v.Name, marker)
			}
			return nil
		},
	})
	return speech
}
