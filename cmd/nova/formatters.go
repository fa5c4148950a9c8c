package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pevans/nova"
)

// printPlaylist prints one line per song, in extraction order
func printPlaylist(w io.Writer, songs []nova.Song) {
	for _, song := range songs {
		fmt.Fprintf(w, "%s  %s - %s\n", song.Time, song.Artist, song.Title)
	}
}

// printError prints a single diagnostic line per error. Joined errors are
// reported one per line.
func printError(w io.Writer, err error) {
	for line := range strings.SplitSeq(err.Error(), "\n") {
		fmt.Fprintf(w, "%s: %s\n", appName, line)
	}
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "nova - Display the songs that recently played on Radio Nova")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nova [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  NOVA_CONFIG    Path to config file (default: ~/.nova/config.yaml)")
	fmt.Fprintln(w, "  NOVA_TIMEZONE  Time zone to display song times in")
	fmt.Fprintln(w, "  NOVA_OFFSET    Minutes to shift song times by")
	fmt.Fprintln(w, "  NOVA_URL       URL of the playlist page")
	fmt.Fprintln(w, "  NOVA_TIMEOUT   Request timeout (default: 10s)")
}
