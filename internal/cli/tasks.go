package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasksync/internal/model"
	"tasksync/internal/task"
)

type filterOptions struct {
	Pending   bool
	Completed bool
}

// status returns the single status selected, or empty for both.
func (o filterOptions) status() model.TaskStatus {
	switch {
	case o.Pending == o.Completed:
		return ""
	case o.Completed:
		return model.TaskStatusCompleted
	default:
		return model.TaskStatusPending
	}
}

// apply filters locally for queries the backend cannot filter.
func (o filterOptions) apply(tasks []model.Task) []model.Task {
	if o.status() == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed() == o.Completed {
			out = append(out, t)
		}
	}
	return out
}

func addFilterArgs(cmd *cobra.Command, o *filterOptions) {
	cmd.Flags().BoolVar(&o.Pending, "pending", false, "Only show pending tasks.")
	cmd.Flags().BoolVar(&o.Completed, "completed", false, "Only show completed tasks.")
}

func addList(topLevel *cobra.Command, rt *runtime) {
	fo := &filterOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your tasks.",
		Example: `
tasksync list
tasksync list --pending
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := rt.loadTasks(cmd.Context(), task.Filtered(fo.status()))
			if err != nil {
				return err
			}
			return rt.printer(cmd).tasks(view.Tasks)
		},
	}
	addFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addSearch(topLevel *cobra.Command, rt *runtime) {
	fo := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search your tasks on the backend.",
		Example: `
tasksync search milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := rt.loadTasks(cmd.Context(), task.Search(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			return rt.printer(cmd).tasks(fo.apply(view.Tasks))
		},
	}
	addFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addAdd(topLevel *cobra.Command, rt *runtime) {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task.",
		Example: `
tasksync add "Buy milk" -d "2% milk from the corner shop"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.requireSession(cmd.Context()); err != nil {
				return err
			}
			created, err := rt.app.Tasks.Create(cmd.Context(), task.CreateInput{
				Title:       strings.Join(args, " "),
				Description: description,
			})
			if err != nil {
				return err
			}
			return rt.printer(cmd).task(created)
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description.")
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command, rt *runtime) {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title or description of a task.",
		Example: `
tasksync edit 12 --title "Buy oat milk"
tasksync edit 12 -d "Two cartons"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields task.Fields
			if cmd.Flags().Changed("title") {
				fields.Title = &title
			}
			if cmd.Flags().Changed("description") {
				fields.Description = &description
			}
			if fields.Empty() {
				return task.ErrNoFields
			}

			id, err := rt.selectTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := rt.app.Tasks.Update(cmd.Context(), id, fields); err != nil {
				return err
			}
			return rt.printSelected(cmd)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title.")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description.")
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between pending and completed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := rt.selectTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := rt.app.Tasks.ToggleStatus(cmd.Context(), id); err != nil {
				return err
			}
			return rt.printSelected(cmd)
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := rt.selectTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := rt.app.Tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return rt.printer(cmd).message("Deleted task %s.", id)
		},
	}
	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in full.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rt.selectTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			return rt.printSelected(cmd)
		},
	}
	topLevel.AddCommand(cmd)
}

// loadTasks requires a verified session and loads mode into the store.
func (rt *runtime) loadTasks(ctx context.Context, mode task.ViewMode) (task.View, error) {
	if err := rt.requireSession(ctx); err != nil {
		return task.View{}, err
	}
	if err := rt.app.Tasks.Load(ctx, mode); err != nil {
		return task.View{}, err
	}
	return rt.app.Tasks.View(), nil
}

// selectTask loads the full collection and selects the task with raw id.
func (rt *runtime) selectTask(ctx context.Context, raw string) (model.TaskID, error) {
	id := model.TaskID(strings.TrimSpace(raw))
	if _, err := rt.loadTasks(ctx, task.All()); err != nil {
		return "", err
	}
	if !rt.app.Tasks.Select(id) {
		return "", fmt.Errorf("%w: %s", errTaskNotFound, id)
	}
	return id, nil
}

func (rt *runtime) printSelected(cmd *cobra.Command) error {
	sel := rt.app.Tasks.View().Selected
	if sel == nil {
		return errors.New("the task is no longer available")
	}
	return rt.printer(cmd).task(*sel)
}
