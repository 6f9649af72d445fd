// Command pdcp-inspector is a read-only terminal UI for browsing the
// bearer snapshots cmd/pdcp-sim publishes to Valkey: a list screen keyed
// by LCID and a detail/search screen, wired the way the teacher's
// admin-tui wires its monitoring menu.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/redis/go-redis/v9"

	"github.com/l2sim/pdcp-entity/internal/config"
	"github.com/l2sim/pdcp-entity/internal/handoverstore"
	"github.com/l2sim/pdcp-entity/internal/tui/monitoring"
	"github.com/l2sim/pdcp-entity/internal/tui/ui"
	"github.com/l2sim/pdcp-entity/pkg/valkey"
)

// Application owns the inspector's TUI and its Valkey-backed store.
type Application struct {
	app         *ui.App
	cfg         *config.Config
	redisClient *redis.Client
	store       *handoverstore.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application := &Application{
		app: ui.NewApp(),
		cfg: cfg,
	}

	if err := application.connectValkey(); err != nil {
		application.showStartupError(err.Error())
		return
	}

	application.showBearerList()
	application.setupGlobalKeyBindings()

	if err := application.app.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func (a *Application) connectValkey() error {
	opts := valkey.InspectorOptions().
		WithAddr(a.cfg.ValkeyAddr()).
		WithPassword(a.cfg.ValkeyPass)

	client, err := valkey.NewClient(opts)
	if err != nil {
		return err
	}

	a.redisClient = client
	a.store = handoverstore.New(client, handoverstore.DefaultTTL)
	return nil
}

func (a *Application) showStartupError(errorMessage string) {
	errorScreen := ui.NewStartupErrorScreen(
		errorMessage,
		func() {
			if err := a.connectValkey(); err != nil {
				a.app.GetStatusBar().ShowError("Connection failed: " + err.Error())
				return
			}
			a.app.HidePage("startup-error")
			a.app.RemovePage("startup-error")
			a.showBearerList()
		},
		func() {
			a.app.Stop()
		},
	)

	a.app.AddPage("startup-error", errorScreen.GetModal(), true, true)
	a.app.GetStatusBar().SetApp(a.app.GetApplication())

	if err := a.app.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func (a *Application) showBearerList() {
	screen := monitoring.NewBearerListScreen(a.app, a.store)

	screen.SetOnSelect(func(lcid uint32) {
		a.showBearerDetail()
	})
	screen.SetOnBack(func() {
		a.cleanup()
		a.app.Stop()
	})

	a.app.AddPage("bearer-list", screen.GetTable(), true, true)
	a.app.SwitchToPage("bearer-list")
	a.app.SetFocus(screen.GetTable())
	a.app.GetStatusBar().SetApp(a.app.GetApplication())

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := screen.Load(ctx)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.app.GetStatusBar().ShowError("Failed to load: " + err.Error())
			}
		})
	}()
}

func (a *Application) showBearerDetail() {
	screen := monitoring.NewBearerDetailScreen(a.app, a.store)

	screen.SetOnBack(func() {
		a.app.HidePage("bearer-detail")
		a.app.RemovePage("bearer-detail")
		a.app.SwitchToPage("bearer-list")
	})

	a.app.AddPage("bearer-detail", screen.GetFlex(), true, false)
	a.app.SwitchToPage("bearer-detail")

	screen.ShowSearchDialog()
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			a.cleanup()
			a.app.Stop()
			return nil
		}
		return event
	})
}

func (a *Application) cleanup() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}

func init() {
	os.Setenv("TERM", os.Getenv("TERM"))
}
