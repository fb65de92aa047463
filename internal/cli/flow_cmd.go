package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/mountainflow/internal/cli/formatter"
	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/alexanderramin/mountainflow/internal/store"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show every section of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app)
		},
	}
}

func runToday(cmd *cobra.Command, app *App) error {
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToday(app.Shell.Snapshot()))
	return nil
}

func newMorningCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morning",
		Short: "Show the morning ritual checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMorning(app.Shell.MorningRitual(), true))
			return nil
		},
	}
	cmd.AddCommand(newMorningToggleCmd(app))
	return cmd
}

func newMorningToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "toggle <item>",
		Short:     "Check or uncheck a ritual item (by name or 1-5)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ritualItemNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := resolveRitualItem(args[0])
			if err != nil {
				return err
			}
			if err := app.Shell.ToggleMorningItem(cmd.Context(), item); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMorning(app.Shell.MorningRitual(), true))
			return nil
		},
	}
}

// resolveRitualItem accepts an item name in any case or its 1-based position.
func resolveRitualItem(arg string) (domain.RitualItem, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(domain.RitualItems) {
			return "", fmt.Errorf("%w: position %d (want 1-%d)", domain.ErrUnknownRitualItem, n, len(domain.RitualItems))
		}
		return domain.RitualItems[n-1], nil
	}
	return domain.ParseRitualItem(strings.ToLower(arg))
}

func ritualItemNames() []string {
	names := make([]string, len(domain.RitualItems))
	for i, it := range domain.RitualItems {
		names[i] = string(it)
	}
	return names
}

func newDetoxCmd(app *App) *cobra.Command {
	energy := &energyValue{level: domain.DefaultEnergy}
	var milestones bool

	cmd := &cobra.Command{
		Use:   "detox",
		Short: "Show the evening detox menu for an energy level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if energy.set {
				if err := app.Shell.SetEveningEnergy(cmd.Context(), energy.level); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatDetox(app.Shell.EveningEnergy(), app.Shell.DetoxMenu()))
			if milestones {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatMilestones(app.Shell.DetoxMilestones()))
			}
			return nil
		},
	}
	cmd.Flags().Var(energy, "energy", "Energy level ("+energyNames()+")")
	cmd.Flags().BoolVar(&milestones, "milestones", false, "Also show the progressive detox plan")
	return cmd
}

func newBreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "break <15|30|45>",
		Short:     "Suggest an outdoor activity for a short break",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"15", "30", "45"},
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil || !slices.Contains(domain.BreakDurations, minutes) {
				return fmt.Errorf("break length must be 15, 30 or 45 minutes, got %q", args[0])
			}
			if _, err := app.Shell.RequestOutdoorBreak(cmd.Context(), minutes); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatOutdoorBreak(app.Shell.OutdoorBreak()))
			fmt.Fprintln(out, formatter.Dim("  Length: "+formatter.FormatMinutes(minutes)))
			return nil
		},
	}
}

func newAdventureCmd(app *App) *cobra.Command {
	tier := &tierValue{tier: domain.DefaultTier}

	cmd := &cobra.Command{
		Use:   "adventure",
		Short: "Suggest a weekend adventure for the current season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if tier.set {
				if err := app.Shell.SetAdventureDistanceTier(ctx, tier.tier); err != nil {
					return err
				}
			}
			if _, err := app.Shell.RequestAdventure(ctx); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdventure(
				app.Shell.Season(), app.Shell.AdventureTier(), app.Shell.Adventure()))
			return nil
		},
	}
	cmd.Flags().Var(tier, "tier", "Distance tier ("+tierNames()+")")
	return cmd
}

func newTrackingCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tracking",
		Short: "Show sport, recovery, and language tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !raw {
				fmt.Fprint(out, formatter.FormatTracking(
					app.Shell.SportPlan(), app.Shell.PainRecovery(), app.Shell.LanguageProgress()))
				return nil
			}
			stored, err := app.Store.Dump(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading preferences: %w", err)
			}
			var rows [][]string
			for _, k := range store.Keys {
				if v, ok := stored[k]; ok {
					rows = append(rows, []string{k, v})
				}
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"SLICE", "STORED"}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored JSON for every slice")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "reset [slice...]",
		Short:     "Clear stored slices so they start from defaults on the next run",
		ValidArgs: store.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := args
			if len(keys) == 0 {
				keys = store.Keys
			}
			if err := app.Store.Reset(cmd.Context(), keys...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("Reset:"), strings.Join(keys, ", "))
			return nil
		},
	}
}
