package feed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// RulesCache holds the rule sets read from a directory of YAML files. It
// never writes to the directory.
type RulesCache struct {
	rulesDir string
	cache    map[string]*RuleSet
	mu       sync.RWMutex
}

func NewRulesCache(rulesDir string) *RulesCache {
	return &RulesCache{
		rulesDir: rulesDir,
		cache:    make(map[string]*RuleSet),
	}
}

func (rc *RulesCache) Run() error {
	if _, err := os.Stat(rc.rulesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(rc.rulesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".yml")

		ruleSet, err := rc.LoadRuleSet(name)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Rule set loaded", "rule_set", name, "enabled", ruleSet.IsEnabled(), "filters", len(ruleSet.Filters))
	}

	return nil
}

func (rc *RulesCache) LoadRuleSet(name string) (*RuleSet, error) {
	ruleFile := rc.getRuleFilePath(name)
	ruleSet, err := rc.parseRuleSet(ruleFile)
	if err != nil {
		return nil, err
	}

	ruleSet.Name = name

	if err := rc.validateRuleSet(ruleSet); err != nil {
		return nil, fmt.Errorf("invalid rule set %s: %w", ruleFile, err)
	}

	if err := rc.compileRuleSet(ruleSet); err != nil {
		return nil, fmt.Errorf("invalid rule set %s: %w", ruleFile, err)
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.cache[ruleSet.Name] = ruleSet

	return ruleSet, nil
}

func (rc *RulesCache) GetRuleSet(name string) (*RuleSet, error) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	ruleSet, ok := rc.cache[name]
	if !ok {
		return nil, fmt.Errorf("rule set with name '%s' not found", name)
	}
	return ruleSet, nil
}

func (rc *RulesCache) GetRuleSets() map[string]*RuleSet {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	ruleSetsCopy := make(map[string]*RuleSet, len(rc.cache))
	for k, v := range rc.cache {
		ruleSetsCopy[k] = v
	}
	return ruleSetsCopy
}

func (rc *RulesCache) GetRuleSetCount() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.cache)
}

// FilterList merges the filters of all enabled rule sets. Rule sets are
// visited in name order so the result does not depend on map iteration.
func (rc *RulesCache) FilterList() *FilterList {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	names := make([]string, 0, len(rc.cache))
	for name := range rc.cache {
		names = append(names, name)
	}
	sort.Strings(names)

	list := NewFilterList()
	for _, name := range names {
		ruleSet := rc.cache[name]
		if !ruleSet.IsEnabled() {
			continue
		}
		for _, f := range ruleSet.Filters {
			list.Add(f)
		}
	}
	return list
}

func (rc *RulesCache) parseRuleSet(ruleFile string) (*RuleSet, error) {
	data, err := os.ReadFile(ruleFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var ruleSet RuleSet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ruleSet); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &ruleSet, nil
}

// validateRuleSet rejects rules with both patterns empty. Such a rule would
// compile to a filter that suppresses every entry.
func (rc *RulesCache) validateRuleSet(ruleSet *RuleSet) error {
	if ruleSet == nil {
		return fmt.Errorf("ruleSet is nil")
	}

	for i, rule := range ruleSet.Rules {
		if rule.Title == "" && rule.Channel == "" {
			return fmt.Errorf("rule %d must have a title or channel pattern", i)
		}
	}

	return nil
}

func (rc *RulesCache) compileRuleSet(ruleSet *RuleSet) error {
	if ruleSet == nil {
		return fmt.Errorf("ruleSet is nil")
	}

	ruleSet.Filters = make([]*Filter, 0, len(ruleSet.Rules))
	for i, rule := range ruleSet.Rules {
		f, err := New(rule.Title, rule.Channel)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		ruleSet.Filters = append(ruleSet.Filters, f)
	}

	return nil
}

func (rc *RulesCache) getRuleFilePath(name string) string {
	return filepath.Join(rc.rulesDir, name+".yml")
}
