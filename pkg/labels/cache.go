package labels

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mzgrid/interfere/pkg/core"
)

// Cache is the persisted key to label table. Labels for keys never seen
// before are computed on demand and appended to the file, so repeated
// lookups grow the cache instead of reformatting.
type Cache struct {
	path  string
	known map[string]string
}

// OpenCache loads an existing label file. A missing or unreadable file
// starts an empty cache that is created on first append.
func OpenCache(path string) *Cache {
	c := &Cache{path: path, known: make(map[string]string)}
	f, err := os.Open(path)
	if err != nil {
		return c
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.WithError(err).Warnf("ignoring unreadable label cache %s", path)
		return c
	}
	for i, rec := range records {
		if len(rec) != 2 || (i == 0 && rec[0] == "key") {
			continue
		}
		c.known[rec[0]] = rec[1]
	}
	return c
}

// Len returns the number of cached labels.
func (c *Cache) Len() int { return len(c.known) }

// Annotate returns one label per row, serving known keys from the cache
// and appending newly computed ones to the file. The returned labels are
// always complete; the error reports a failed cache append only.
func (c *Cache) Annotate(rows []core.Ion) ([]string, error) {
	out := make([]string, len(rows))
	fresh := make(map[string]string)
	for i, r := range rows {
		if l, ok := c.known[r.Key]; ok {
			out[i] = l
			continue
		}
		l := Format(r)
		out[i] = l
		fresh[r.Key] = l
	}
	if len(fresh) == 0 {
		return out, nil
	}
	for k, l := range fresh {
		c.known[k] = l
	}
	return out, c.appendNew(fresh)
}

func (c *Cache) appendNew(fresh map[string]string) error {
	keys := make([]string, 0, len(fresh))
	for k := range fresh {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, statErr := os.Stat(c.path)
	created := os.IsNotExist(statErr)

	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening label cache %s", c.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if created {
		if err := w.Write([]string{"key", "label"}); err != nil {
			return errors.Wrap(err, "writing label cache header")
		}
	}
	for _, k := range keys {
		if err := w.Write([]string{k, fresh[k]}); err != nil {
			return errors.Wrap(err, "writing label row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing label cache")
}
