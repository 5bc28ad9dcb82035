package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/recitation/internal/domain"
	"github.com/heartmarshall/recitation/internal/tui"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printOverview(w io.Writer, texts []domain.TextWithRecording) error {
	if len(texts) == 0 {
		_, err := fmt.Fprintln(w, "no texts")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tRECORDED")
	for _, t := range texts {
		recorded := "-"
		if t.HasRecording && t.RecordedAt != nil {
			recorded = t.RecordedAt.Local().Format(timeLayout)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Title, orDash(t.Author), recorded)
	}
	return tw.Flush()
}

func printText(w io.Writer, t *domain.Text) error {
	origin := "built-in"
	if t.IsCustom {
		origin = "custom"
	}
	_, err := fmt.Fprintf(w, "%s\n%s · %s · %s\n\n%s\n", t.Title, orDash(t.Author), origin, t.ID, t.Content)
	return err
}

func printRecordings(w io.Writer, recs []*domain.Recording, titles map[string]string) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "no recordings")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTEXT\tDURATION\tSIZE\tTYPE\tRECORDED")
	for _, r := range recs {
		title, ok := titles[r.TextID.String()]
		if !ok {
			title = r.TextID.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			title,
			tui.FormatDuration(time.Duration(r.Duration*float64(time.Second))),
			formatBytes(r.FileSize),
			domain.BaseMimeType(r.MimeType),
			r.RecordedAt.Local().Format(timeLayout),
		)
	}
	return tw.Flush()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
