package history

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func List(deps Deps) dispatchers.ActionFunc {
	return func(_ dispatchers.Sender, call *dispatchers.CallContext) error {
		return list(call, deps)
	}
}

// list shows one page of history, newest first.
func list(call *dispatchers.CallContext, deps Deps) error {
	total, err := deps.History.Count(domain.HistoryFilter{})
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}
	if total == 0 {
		call.Reply("%s", deps.Styler.Muted("No history yet"))
		return nil
	}

	page := call.Page(total)
	if page == dispatchers.PageParseFailed {
		token, _ := call.PageToken()
		return usage.InvalidPage(token)
	}
	start, end := dispatchers.PageBounds(page, total, call.PageSize())

	records, err := deps.History.List(domain.HistoryFilter{
		Limit:  end - start,
		Offset: start,
	})
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	pages := max(1, dispatchers.PageCount(total, call.PageSize()))
	call.Reply("%s", deps.Styler.Header(fmt.Sprintf("History (page %d/%d)", page+1, pages)))
	for _, rec := range records {
		call.Reply("%s  %-10s %s %s",
			deps.Styler.Muted(deps.Layout.Full(rec.CreatedAt.Local())),
			rec.Sender,
			rec.Line,
			outcomeLabel(rec, deps.Styler),
		)
	}
	return nil
}

func outcomeLabel(rec domain.HistoryRecord, styler domain.Styler) string {
	switch {
	case rec.Error != "":
		return styler.Error("(" + rec.Error + ")")
	case rec.Outcome == dispatchers.OutcomeExecuted.String():
		return ""
	default:
		return styler.Warning("(" + rec.Outcome + ")")
	}
}
