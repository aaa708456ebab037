package profile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Profiles is an ordered candidate batch. Order is extraction order until
// SortByScore is called; every helper preserves the current order.
type Profiles struct {
	Items []*Profile
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

func (p *Profiles) FindByID(id string) *Profile {
	for _, item := range p.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// URLs returns the profile URLs in order, skipping empties.
func (p *Profiles) URLs() []string {
	urls := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if item.URL != "" {
			urls = append(urls, item.URL)
		}
	}
	return urls
}

// SortByScore orders the batch by score descending. The sort is stable so
// ties keep their extraction order, which is the default presentation
// contract.
func (p *Profiles) SortByScore() {
	sort.SliceStable(p.Items, func(i, j int) bool {
		return p.Items[i].Score > p.Items[j].Score
	})
}

// Exclude removes profiles whose named field equals any target, preserving
// the order of the remaining items. It returns the ids of removed profiles.
func (p *Profiles) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	targetSet := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	var excluded []string
	kept := p.Items[:0]
	for _, item := range p.Items {
		if _, hit := targetSet[item.GetStringField(name)]; hit {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	p.Items = kept
	return excluded
}

// ReportByCompany groups the batch by extracted company for a quick
// overview of where the candidates work.
func (p *Profiles) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range p.Items {
		key := item.Company
		if key == "" {
			key = "(unknown)"
		}
		report[key] = append(report[key], map[string]string{
			"name":     item.Name,
			"title":    item.Title,
			"location": item.Location,
			"url":      item.URL,
			"score":    strconv.Itoa(item.Score),
		})
	}
	return report
}

// DumpToTmpFile writes the batch as indented JSON to a temp file and
// returns its name.
func (p *Profiles) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "profiles_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// WriteCSV exports the batch to the given path, one row per profile in the
// current order.
func (p *Profiles) WriteCSV(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write([]string{"name", "title", "company", "location", "score", "url", "matched", "unmatched"}); err != nil {
		return err
	}

	for i, item := range p.Items {
		row := []string{
			item.DisplayName(i),
			item.Title,
			item.Company,
			item.Location,
			strconv.Itoa(item.Score),
			item.URL,
			joinList(item.Metadata.MatchedRequirements),
			joinList(item.Metadata.UnmatchedRequirements),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	// Error only reports failures that happened before the call, so
	// flush the buffered rows first.
	w.Flush()
	return w.Error()
}

func joinList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += "; "
		}
		out += item
	}
	return out
}

// String summarizes the batch for logs.
func (p *Profiles) String() string {
	return fmt.Sprintf("%d profiles", len(p.Items))
}
