package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelfeed/reelfeed/infra/config"
	"github.com/reelfeed/reelfeed/infra/media"
	"github.com/reelfeed/reelfeed/infra/mockfeed"
	"github.com/reelfeed/reelfeed/infra/share"
	"github.com/reelfeed/reelfeed/infra/state"
	"github.com/reelfeed/reelfeed/tui"
	"github.com/reelfeed/reelfeed/tui/feed"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: reelfeed [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// feedParams maps the loaded configuration and persisted UI state onto
// the feed controller's parameters.
func feedParams(cfg config.Config, ui state.UIState) feed.Params {
	return feed.Params{
		RenderRadius:  cfg.Playback.RenderRadius,
		PreloadRadius: cfg.Playback.PreloadRadius,
		Threshold:     cfg.Playback.Threshold,
		Lookahead:     cfg.Feed.Lookahead,
		Autoplay:      media.ParsePolicy(cfg.Playback.Autoplay),
		BufferDelay:   time.Duration(cfg.Playback.BufferMillis) * time.Millisecond,
		Muted:         ui.Muted,
	}
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("reelfeed %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from file and environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure. A broken state db degrades to memory.
	store, err := state.NewStore(cfg.State.Path)
	if err != nil {
		store, _ = state.NewStore("")
	}
	defer store.Close()
	uiState, _ := store.LoadUIState()

	// 3. Build services (concrete types satisfy app.* interfaces).
	feedSvc := mockfeed.New(cfg.Feed.PageSize, cfg.Feed.Pages)
	shareSvc := share.New()

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Feed:     feedSvc,
		Comments: feedSvc,
		Share:    shareSvc,
		Store:    store,
		Params:   feedParams(cfg, uiState),
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "reelfeed: %v\n", err)
		os.Exit(1)
	}
}
