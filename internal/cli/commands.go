package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/accordion/internal/accordion"
	"github.com/idilsaglam/accordion/internal/model"
	"github.com/idilsaglam/accordion/internal/store/jsonstore"
	"github.com/idilsaglam/accordion/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the sections interactively (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			open, _ := cmd.Flags().GetString("open")
			return a.view(open)
		},
	}
	cmd.Flags().Bool("animate", false, "spring panels open and closed")
	cmd.Flags().String("open", "", "id of the section to start expanded")
	_ = viper.BindPFlag("ui.animate", cmd.Flags().Lookup("animate"))
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the sections; the --open one shows its body",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			open, _ := cmd.Flags().GetString("open")
			return a.list(cmd, open)
		},
	}
	cmd.Flags().String("open", "", "id of the section to expand")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	const usage = "accordion add <id> <title> [body...]"
	return &cobra.Command{
		Use:   "add <id> <title> [body...]",
		Short: "Append a section",
		Args:  minArgs(2, usage),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.add(cmd, args[0], args[1], strings.Join(args[2:], " "))
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a section",
		Args:  exactArgs(1, "accordion rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.remove(cmd, args[0])
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("yaml marshal: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

// -------------- subcommand impls ----------------

func (a *app) view(open string) error {
	items, _, err := a.load()
	if err != nil {
		return err
	}
	g := buildGroup(items, open)

	opts := []accordion.Option{
		accordion.WithTheme(ui.Current()),
		accordion.WithTitle(a.cfg.UI.Title),
		accordion.WithLogger(a.log.With("component", "tui")),
	}
	if a.cfg.UI.Animate {
		opts = append(opts, accordion.WithAnimation(a.cfg.UI.FPS))
	}
	a.log.Info("starting", "items", g.Len(), "strategy", g.Strategy().String())

	p := tea.NewProgram(accordion.New(g, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (a *app) list(cmd *cobra.Command, open string) error {
	items, _, err := a.load()
	if err != nil {
		return err
	}
	g := buildGroup(items, open)
	t := ui.Current()

	opened := "none open"
	if id, ok := g.Controller().Open(); ok {
		opened = string(id) + " open"
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s", t.Title.Render(a.cfg.UI.Title), t.Muted.Render("Total"), g.Len(), t.Muted.Render(opened)),
		"",
	}
	if g.Len() == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for _, it := range g.Items() {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Indicator(it.Header.Expanded()), it.Header.Title(), t.Muted.Render("["+string(it.ID)+"]")))
		if it.Panel.Visible() {
			lines = append(lines, t.Body.Width(72).Render(it.Panel.Body()))
		}
	}
	ui.Fpanel(cmd.OutOrStdout(), lines)
	return nil
}

func (a *app) add(cmd *cobra.Command, id, title, body string) error {
	items, path, err := a.load()
	if err != nil {
		return err
	}
	id, title = strings.TrimSpace(id), strings.TrimSpace(title)
	if id == "" || title == "" {
		return usagef("add: empty id or title")
	}
	if model.Find(items, id) >= 0 {
		return usagef("add: id already exists: %s", id)
	}
	items = append(items, model.Item{ID: id, Title: title, Body: strings.TrimSpace(body)})
	if err := jsonstore.Save(path, items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	a.log.Info("added", "id", id)
	ui.Fok(cmd.OutOrStdout(), "added")
	return nil
}

func (a *app) remove(cmd *cobra.Command, id string) error {
	items, path, err := a.load()
	if err != nil {
		return err
	}
	i := model.Find(items, id)
	if i < 0 {
		return usagef("rm: no item with id %q (have %d)", id, len(items))
	}
	items = append(items[:i], items[i+1:]...)
	if err := jsonstore.Save(path, items); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	a.log.Info("removed", "id", id)
	ui.Fok(cmd.OutOrStdout(), "removed")
	return nil
}

// -------------- helpers --------------

func (a *app) load() ([]model.Item, string, error) {
	path, err := jsonstore.Path(a.cfg.Data.File)
	if err != nil {
		return nil, "", err
	}
	items, err := jsonstore.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load: %w", err)
	}
	return items, path, nil
}

// buildGroup registers items in file order and opens open, if given.
// An id matching no item is accepted and leaves every section closed.
func buildGroup(items []model.Item, open string) *accordion.Group {
	g := accordion.NewGroup()
	for _, it := range items {
		g.Add(accordion.ID(it.ID), it.Title, it.Body)
	}
	if open != "" {
		g.Toggle(accordion.ID(open))
		g.Focus(accordion.ID(open))
	}
	return g
}
