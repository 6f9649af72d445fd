package monitoring

import (
	"context"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/tui/format"
	"github.com/l2sim/pdcp-entity/internal/tui/ui"
)

// SortField はソートフィールドを表す。
type SortField int

const (
	// SortByLCID はLCIDでソート
	SortByLCID SortField = iota
	// SortByUpdatedAt は更新時刻でソート
	SortByUpdatedAt
	// SortByUndelivered は未配送数でソート
	SortByUndelivered
)

// BearerListScreen はベアラ一覧画面を表す。
type BearerListScreen struct {
	table      *tview.Table
	app        *ui.App
	store      *handoverstore.Store
	bearers    []handoverstore.BearerSnapshot
	filter     *ui.Filter
	pagination *ui.Pagination
	sortField  SortField
	sortDesc   bool
	onSelect   func(lcid uint32)
	onBack     func()
}

// NewBearerListScreen は新しいBearerListScreenを生成する。
func NewBearerListScreen(app *ui.App, store *handoverstore.Store) *BearerListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Bearer List ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	screen := &BearerListScreen{
		table:      table,
		app:        app,
		store:      store,
		filter:     ui.NewFilter("Kind"),
		pagination: ui.NewPagination(ui.DefaultPageSize),
		sortField:  SortByLCID,
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnSelect はベアラ選択時のコールバックを設定する。
func (s *BearerListScreen) SetOnSelect(handler func(lcid uint32)) {
	s.onSelect = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *BearerListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetTable は内部のtview.Tableを返す。
func (s *BearerListScreen) GetTable() *tview.Table {
	return s.table
}

// Load はデータを読み込む。
func (s *BearerListScreen) Load(ctx context.Context) error {
	bearers, err := s.store.ListSnapshots(ctx)
	if err != nil {
		return err
	}

	s.bearers = bearers
	s.sortBearers()
	s.render()
	return nil
}

// Refresh はデータを再読み込みする。
func (s *BearerListScreen) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// SetFilter はフィルタを設定する。
func (s *BearerListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.pagination.FirstPage()
	s.render()
}

// ClearFilter はフィルタをクリアする。
func (s *BearerListScreen) ClearFilter() {
	s.filter.Clear()
	s.pagination.FirstPage()
	s.render()
}

// GetSelectedLCID は選択されているベアラのLCIDを返す。
func (s *BearerListScreen) GetSelectedLCID() (uint32, bool) {
	row, _ := s.table.GetSelection()
	filtered := s.getFilteredBearers()
	pageItems := ui.GetPageItems(filtered, s.pagination)
	idx := row - 1
	if idx < 0 || idx >= len(pageItems) {
		return 0, false
	}
	return pageItems[idx].LCID, true
}

// ToggleSort はソートを切り替える。
func (s *BearerListScreen) ToggleSort() {
	s.sortField = (s.sortField + 1) % 3
	s.sortBearers()
	s.render()
}

func (s *BearerListScreen) sortBearers() {
	switch s.sortField {
	case SortByLCID:
		sort.Slice(s.bearers, func(i, j int) bool {
			if s.sortDesc {
				return s.bearers[i].LCID > s.bearers[j].LCID
			}
			return s.bearers[i].LCID < s.bearers[j].LCID
		})
	case SortByUpdatedAt:
		sort.Slice(s.bearers, func(i, j int) bool {
			if s.sortDesc {
				return s.bearers[i].UpdatedAt.After(s.bearers[j].UpdatedAt)
			}
			return s.bearers[i].UpdatedAt.Before(s.bearers[j].UpdatedAt)
		})
	case SortByUndelivered:
		sort.Slice(s.bearers, func(i, j int) bool {
			if s.sortDesc {
				return s.bearers[i].UndeliveredCount > s.bearers[j].UndeliveredCount
			}
			return s.bearers[i].UndeliveredCount < s.bearers[j].UndeliveredCount
		})
	}
}

func (s *BearerListScreen) getFilteredBearers() []handoverstore.BearerSnapshot {
	return ui.FilterItems(s.bearers, s.filter, func(b handoverstore.BearerSnapshot) []string {
		return []string{b.Kind, fmt.Sprintf("%d", b.LCID), fmt.Sprintf("%d", b.BearerID)}
	})
}

func (s *BearerListScreen) render() {
	s.table.Clear()

	headers := []string{"LCID", "Bearer ID", "Kind", "Next TX SN", "Next RX SN", "Undelivered", "Updated"}
	sortIndicators := make([]string, len(headers))
	switch s.sortField {
	case SortByLCID:
		sortIndicators[0] = s.sortArrow()
	case SortByUndelivered:
		sortIndicators[5] = s.sortArrow()
	case SortByUpdatedAt:
		sortIndicators[6] = s.sortArrow()
	}

	for col, header := range headers {
		cell := tview.NewTableCell(header + sortIndicators[col]).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1)
		s.table.SetCell(0, col, cell)
	}

	filtered := s.getFilteredBearers()
	pageItems := ui.GetPageItems(filtered, s.pagination)

	for i, b := range pageItems {
		row := i + 1

		s.table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", b.LCID)).
			SetTextColor(tcell.ColorWhite).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.table.SetCell(row, 1, tview.NewTableCell(fmt.Sprintf("%d", b.BearerID)).
			SetTextColor(tcell.ColorWhite).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.table.SetCell(row, 2, tview.NewTableCell(b.Kind).
			SetTextColor(tcell.ColorTeal).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", b.State.NextTxSN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%d", b.State.NextRxSN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))

		undeliveredColor := tcell.ColorGreen
		if b.UndeliveredCount > 0 {
			undeliveredColor = tcell.ColorYellow
		}
		s.table.SetCell(row, 5, tview.NewTableCell(fmt.Sprintf("%d", b.UndeliveredCount)).
			SetTextColor(undeliveredColor).SetAlign(tview.AlignLeft).SetExpansion(1))

		s.table.SetCell(row, 6, tview.NewTableCell(format.Elapsed(b.UpdatedAt.Unix())+" ago").
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))
	}

	title := " Bearer List "
	if s.filter.Active {
		title += "[yellow](" + s.filter.FormatFilterStatus() + ")[-] "
	}
	title += "[gray]" + s.pagination.FormatPageInfo() + "[-] "
	s.table.SetTitle(title)

	if len(pageItems) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *BearerListScreen) sortArrow() string {
	if s.sortDesc {
		return " ▼"
	}
	return " ▲"
}

func (s *BearerListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active {
				s.ClearFilter()
				return nil
			}
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case tcell.KeyF5:
			s.app.QueueUpdateDraw(func() {
				if err := s.Refresh(context.Background()); err != nil {
					s.app.GetStatusBar().ShowError("Failed to refresh: " + err.Error())
				} else {
					s.app.GetStatusBar().ShowSuccess("Refreshed")
				}
			})
			return nil
		case tcell.KeyPgUp:
			if s.pagination.PrevPage() {
				s.render()
			}
			return nil
		case tcell.KeyPgDn:
			if s.pagination.NextPage() {
				s.render()
			}
			return nil
		case tcell.KeyEnter:
			if lcid, ok := s.GetSelectedLCID(); ok && s.onSelect != nil {
				s.onSelect(lcid)
			}
			return nil
		}

		switch event.Rune() {
		case 's':
			s.ToggleSort()
			return nil
		case 'r':
			s.app.QueueUpdateDraw(func() {
				if err := s.Refresh(context.Background()); err != nil {
					s.app.GetStatusBar().ShowError("Failed to refresh: " + err.Error())
				} else {
					s.app.GetStatusBar().ShowSuccess("Refreshed")
				}
			})
			return nil
		case '/':
			s.showFilterDialog()
			return nil
		case 'q':
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}

		return event
	})
}

func (s *BearerListScreen) showFilterDialog() {
	dialog := ui.NewInputDialog(
		"Filter Bearers",
		"Kind/LCID contains:",
		s.filter.Query,
		func(value string) {
			s.SetFilter(value)
			s.app.HidePage("filter-dialog")
			s.app.RemovePage("filter-dialog")
			s.app.SetFocus(s.table)
		},
		func() {
			s.app.HidePage("filter-dialog")
			s.app.RemovePage("filter-dialog")
			s.app.SetFocus(s.table)
		},
	)

	s.app.AddPage("filter-dialog", centered(dialog.GetForm(), 50, 7), true, true)
	s.app.SetFocus(dialog.GetForm())
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
