package monitoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/tui/ui"
)

// BearerDetailScreen はベアラ詳細画面を表す。LCIDで検索し、選択した
// ベアラの4つのカウンタ(Next TX SN, TX HFN, Next RX SN, RX HFN)と
// 未配送SDU数を表示する。
type BearerDetailScreen struct {
	flex      *tview.Flex
	textView  *tview.TextView
	matches   *tview.Table
	app       *ui.App
	store     *handoverstore.Store
	query     string
	snapshots []handoverstore.BearerSnapshot
	onBack    func()
}

// NewBearerDetailScreen は新しいBearerDetailScreenを生成する。
func NewBearerDetailScreen(app *ui.App, store *handoverstore.Store) *BearerDetailScreen {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	textView.SetBorder(true).
		SetTitle(" Bearer Detail ").
		SetBorderColor(tcell.ColorBlue)

	matches := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	matches.SetBorder(true).
		SetTitle(" Matches ").
		SetBorderColor(tcell.ColorGray)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(textView, 8, 0, true).
		AddItem(matches, 0, 1, false)

	screen := &BearerDetailScreen{
		flex:     flex,
		textView: textView,
		matches:  matches,
		app:      app,
		store:    store,
	}

	screen.setupKeyBindings()
	return screen
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *BearerDetailScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetFlex は内部のtview.Flexを返す。
func (s *BearerDetailScreen) GetFlex() *tview.Flex {
	return s.flex
}

// ShowSearchDialog は検索ダイアログを表示する。
func (s *BearerDetailScreen) ShowSearchDialog() {
	dialog := ui.NewInputDialog(
		"Search Bearers",
		"LCID or kind contains:",
		s.query,
		func(value string) {
			s.app.HidePage("search-dialog")
			s.app.RemovePage("search-dialog")
			go func() {
				err := s.Search(context.Background(), value)
				s.app.QueueUpdateDraw(func() {
					if err != nil {
						s.app.GetStatusBar().ShowError("Search failed: " + err.Error())
					}
					s.app.SetFocus(s.matches)
				})
			}()
		},
		func() {
			s.app.HidePage("search-dialog")
			s.app.RemovePage("search-dialog")
			if s.query == "" && s.onBack != nil {
				s.onBack()
			} else {
				s.app.SetFocus(s.textView)
			}
		},
	)

	s.app.AddPage("search-dialog", centeredDetail(dialog.GetForm(), 50, 7), true, true)
	s.app.SetFocus(dialog.GetForm())
}

// Search は指定されたクエリにマッチするベアラを検索する。LCIDの完全一
// 致と、LCID/kindの部分一致の両方を対象にする。
func (s *BearerDetailScreen) Search(ctx context.Context, query string) error {
	s.query = query

	all, err := s.store.ListSnapshots(ctx)
	if err != nil {
		s.textView.SetText(fmt.Sprintf("[red]Error: %s[-]", err.Error()))
		return err
	}

	exactLCID, isNumeric := parseLCID(query)

	var matched []handoverstore.BearerSnapshot
	for _, snap := range all {
		if isNumeric && snap.LCID == exactLCID {
			matched = append(matched, snap)
			continue
		}
		if query == "" || containsFold(snap.Kind, query) || containsFold(fmt.Sprintf("%d", snap.LCID), query) {
			matched = append(matched, snap)
		}
	}

	s.snapshots = matched
	s.render()
	return nil
}

func parseLCID(query string) (uint32, bool) {
	n, err := strconv.ParseUint(query, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *BearerDetailScreen) render() {
	var content string
	content += fmt.Sprintf("[yellow]Query:[-] %s\n", s.query)
	content += fmt.Sprintf("[cyan]Bearers found:[-] %d\n", len(s.snapshots))
	content += "\n[gray]Press '/' to search again[-]"

	s.textView.SetText(content)

	s.matches.Clear()

	headers := []string{"LCID", "Bearer ID", "Kind", "Next TX SN", "TX HFN", "Next RX SN", "RX HFN", "Undelivered"}
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignLeft).
			SetSelectable(false).
			SetExpansion(1)
		s.matches.SetCell(0, col, cell)
	}

	if len(s.snapshots) == 0 {
		s.matches.SetSelectable(false, false)
		s.matches.SetCell(1, 0, tview.NewTableCell("No bearers found").
			SetTextColor(tcell.ColorGray).
			SetSelectable(false))
		return
	}

	s.matches.SetSelectable(true, false)

	for i, snap := range s.snapshots {
		row := i + 1

		s.matches.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", snap.LCID)).
			SetTextColor(tcell.ColorWhite).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 1, tview.NewTableCell(fmt.Sprintf("%d", snap.BearerID)).
			SetTextColor(tcell.ColorWhite).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 2, tview.NewTableCell(snap.Kind).
			SetTextColor(tcell.ColorTeal).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", snap.State.NextTxSN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%d", snap.State.TxHFN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 5, tview.NewTableCell(fmt.Sprintf("%d", snap.State.NextRxSN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))
		s.matches.SetCell(row, 6, tview.NewTableCell(fmt.Sprintf("%d", snap.State.RxHFN)).
			SetTextColor(tcell.ColorGray).SetAlign(tview.AlignLeft).SetExpansion(1))

		undeliveredColor := tcell.ColorGreen
		if snap.UndeliveredCount > 0 {
			undeliveredColor = tcell.ColorYellow
		}
		s.matches.SetCell(row, 7, tview.NewTableCell(fmt.Sprintf("%d", snap.UndeliveredCount)).
			SetTextColor(undeliveredColor).SetAlign(tview.AlignLeft).SetExpansion(1))
	}

	if len(s.snapshots) > 0 {
		s.matches.Select(1, 0)
	}
}

func (s *BearerDetailScreen) setupKeyBindings() {
	s.textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		case tcell.KeyTab:
			s.app.SetFocus(s.matches)
			return nil
		}

		switch event.Rune() {
		case '/':
			s.ShowSearchDialog()
			return nil
		case 'q':
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}

		return event
	})

	s.matches.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyTab:
			s.app.SetFocus(s.textView)
			return nil
		}

		switch event.Rune() {
		case '/':
			s.ShowSearchDialog()
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

func centeredDetail(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
