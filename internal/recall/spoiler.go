package recall

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
)

// DumpSpoilers writes the header and full description of every race to w,
// as if everything about them were known. tracker may be nil; it is read,
// never changed. width 0 disables wrapping.
func DumpSpoilers(w io.Writer, races *data.RaceTable, tracker *lore.Tracker, opts Options, width int) error {
	opts.Spoilers = true
	bw := bufio.NewWriter(w)
	title := "Monster Spoilers"
	fmt.Fprintf(bw, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	for _, race := range races.All() {
		rec := lore.Record{RaceID: race.ID}
		if tracker != nil {
			rec = tracker.Get(race.ID)
		}
		fmt.Fprintf(bw, "%s\n%s\n\n", Header(race).Plain(), Describe(race, rec.Cheat(race), opts).Wrap(width))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write spoilers: %w", err)
	}
	return nil
}

// DumpSpoilerFile writes the spoilers to path, replacing the file.
func DumpSpoilerFile(path string, races *data.RaceTable, tracker *lore.Tracker, opts Options, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create spoilers %s: %w", path, err)
	}
	if err := DumpSpoilers(f, races, tracker, opts, width); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
