package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lysyi3m/feedfilter/app/cfg"
	"github.com/lysyi3m/feedfilter/app/feed"
)

func main() {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Debug("Starting feedfilter", "version", appCfg.Version, "rules_dir", appCfg.RulesDir)

	list, err := loadFilters(appCfg)
	if err != nil {
		slog.Error("Failed to load filters", "error", err)
		os.Exit(1)
	}

	if err := run(list, appCfg.ShowSuppressed, os.Stdin, os.Stdout); err != nil {
		slog.Error("Filtering failed", "error", err)
		os.Exit(1)
	}
}

func loadFilters(appCfg *cfg.Cfg) (*feed.FilterList, error) {
	rulesCache := feed.NewRulesCache(appCfg.RulesDir)
	if err := rulesCache.Run(); err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	list := rulesCache.FilterList()
	slog.Info("Rules loaded", "rule_sets", rulesCache.GetRuleSetCount(), "filters", list.Len())

	if appCfg.HasInlineRule() {
		f, err := feed.New(appCfg.Title, appCfg.Channel)
		if err != nil {
			return nil, fmt.Errorf("command line rule: %w", err)
		}
		if !list.Add(f) {
			slog.Debug("Command line rule already configured", "filter", f.String())
		}
	}

	return list, nil
}

// run reads JSON-lines entries from in and writes either the shown or the
// suppressed ones to out in the same format.
func run(list *feed.FilterList, showSuppressed bool, in io.Reader, out io.Writer) error {
	filterer := feed.NewFilterer()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(out)

	shownCount := 0
	suppressedCount := 0
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var entry feed.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return fmt.Errorf("failed to decode entry on line %d: %w", lineNum, err)
		}

		entry = filterer.Run([]feed.Entry{entry}, list)[0]
		if entry.IsFiltered {
			suppressedCount++
			slog.Debug("Entry suppressed", "id", entry.ID, "title", entry.Title, "reason", entry.FilterReason)
		} else {
			shownCount++
		}

		if entry.IsFiltered != showSuppressed {
			continue
		}
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	slog.Info("Entries filtered", "shown", shownCount, "suppressed", suppressedCount)

	return nil
}
