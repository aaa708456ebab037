package profile

import (
	"encoding/json"
	"os"
	"time"
)

// DismissedProfiles is the persisted list of candidates the user has
// already rejected, so repeated searches do not resurface them.
type DismissedProfiles struct {
	Items []*DismissedProfile
}

type DismissedProfile struct {
	URL         string
	Name        string
	Company     string
	DismissedAt time.Time
}

// ToDismissed converts the current batch into dismissal entries.
func (p *Profiles) ToDismissed() *DismissedProfiles {
	dismissed := &DismissedProfiles{}
	for _, item := range p.Items {
		dismissed.Items = append(dismissed.Items, &DismissedProfile{
			URL:         item.URL,
			Name:        item.Name,
			Company:     item.Company,
			DismissedAt: time.Now().UTC(),
		})
	}
	return dismissed
}

// GetDismissedFromFile loads dismissal entries from path. An empty file
// yields an empty list.
func GetDismissedFromFile(path string) (*DismissedProfiles, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &DismissedProfiles{}, nil
	}

	var dismissed DismissedProfiles
	if err := json.NewDecoder(file).Decode(&dismissed); err != nil {
		return nil, err
	}
	return &dismissed, nil
}

func (d *DismissedProfiles) Append(other *DismissedProfiles) {
	d.Items = append(d.Items, other.Items...)
}

func (d *DismissedProfiles) URLs() []string {
	urls := make([]string, 0, len(d.Items))
	for _, item := range d.Items {
		urls = append(urls, item.URL)
	}
	return urls
}

func (d *DismissedProfiles) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
