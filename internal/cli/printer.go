package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tasksync/internal/model"
	"tasksync/internal/session"
)

const previewWidth = 60

type printer struct {
	out  io.Writer
	json bool
}

type taskOut struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     *string   `json:"summary,omitempty"`
	Preview     string    `json:"preview"`
	Status      string    `json:"status"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskOut(t model.Task) taskOut {
	return taskOut{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Summary:     t.Summary,
		Preview:     t.Preview(),
		Status:      string(t.Status),
		Completed:   t.Completed(),
		CreatedAt:   t.CreatedAt,
	}
}

type statusOut struct {
	Status        session.Status `json:"status"`
	Authenticated bool           `json:"authenticated"`
	CanRetry      bool           `json:"can_retry"`
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) tasks(tasks []model.Task) error {
	if p.json {
		out := make([]taskOut, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, newTaskOut(t))
		}
		return p.encode(out)
	}

	if len(tasks) == 0 {
		_, err := color.New(color.Faint, color.Italic).Fprintln(p.out, "no tasks")
		return err
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = previewWidth
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("STATUS"), bold.Sprint("TITLE"), bold.Sprint("PREVIEW"))
	for _, t := range tasks {
		tbl.AddRow(t.ID, statusMark(t), t.Title, t.Preview())
	}
	_, err := fmt.Fprintln(p.out, tbl)
	return err
}

func (p printer) task(t model.Task) error {
	if p.json {
		return p.encode(newTaskOut(t))
	}

	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = previewWidth
	tbl.AddRow(faint.Sprint("id"), t.ID)
	tbl.AddRow(faint.Sprint("title"), color.New(color.Bold).Sprint(t.Title))
	tbl.AddRow(faint.Sprint("status"), statusMark(t))
	tbl.AddRow(faint.Sprint("description"), t.Description)
	if t.Summary != nil && *t.Summary != "" {
		tbl.AddRow(faint.Sprint("summary"), *t.Summary)
	}
	if !t.CreatedAt.IsZero() {
		tbl.AddRow(faint.Sprint("created"), t.CreatedAt.Local().Format(time.RFC1123))
	}
	_, err := fmt.Fprintln(p.out, tbl)
	return err
}

func (p printer) status(st session.Status) error {
	if p.json {
		return p.encode(statusOut{
			Status:        st,
			Authenticated: st == session.StatusVerified,
			CanRetry:      st == session.StatusUnreachable,
		})
	}

	c := color.New(color.FgYellow)
	switch st {
	case session.StatusVerified:
		c = color.New(color.FgGreen)
	case session.StatusInvalid, session.StatusUnreachable:
		c = color.New(color.FgRed)
	}
	_, err := fmt.Fprintf(p.out, "session: %s\n", c.Sprint(st))
	return err
}

func (p printer) message(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		return p.encode(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

func statusMark(t model.Task) string {
	if t.Completed() {
		return color.GreenString("done")
	}
	return color.YellowString("pending")
}
