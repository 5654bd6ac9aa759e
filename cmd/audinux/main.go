// ABOUTME: Entry point for the Audinux player
// ABOUTME: Parses CLI flags, wires settings, session and TUI together
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/audinux/audinux-go/internal/config"
	"github.com/audinux/audinux-go/internal/session"
	"github.com/audinux/audinux-go/internal/ui"
	"github.com/audinux/audinux-go/internal/version"
	"github.com/audinux/audinux-go/pkg/waveform"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	logFile      = flag.String("log-file", "audinux.log", "Log file path")
	bucketMs     = flag.Int("bucket-ms", 200, "Waveform cache bucket duration in milliseconds")
	settingsPath = flag.String("settings", "", "Settings file path (default: user config dir)")
)

func main() {
	flag.Parse()

	// TUI owns the terminal; log only to the file
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(f)

	log.Printf("Starting %s %s", version.Product, version.Version)

	// Settings are an explicit struct: loaded here, handed to the session,
	// written back on exit
	sPath := *settingsPath
	if sPath == "" {
		sPath, err = config.DefaultPath()
		if err != nil {
			log.Fatalf("no settings path: %v", err)
		}
	}
	settings := config.Load(sPath)

	var prog *tea.Program
	sess := session.New(session.Config{
		BucketDuration: time.Duration(*bucketMs) * time.Millisecond,
		OnReady: func(path string, _ *waveform.Summary) {
			prog.Send(ui.ReadyMsg{Path: path})
		},
		OnError: func(path string, err error) {
			prog.Send(ui.ErrorMsg{Path: path, Err: err})
		},
	}, settings)
	defer sess.Close()

	// Positional args seed the playlist
	for _, path := range flag.Args() {
		sess.Playlist().Add(path)
	}

	// The program must exist before the first build starts so its
	// callbacks always have a live program to deliver to
	prog = ui.Run(sess, settings.Zoom)
	if first, ok := sess.Playlist().Current(); ok {
		sess.Open(first)
	}

	finalModel, err := prog.Run()
	if err != nil {
		log.Fatalf("TUI error: %v", err)
	}

	// Write settings back on exit
	if m, ok := finalModel.(ui.Model); ok {
		settings.Zoom = m.Zoom()
	}
	settings.LastRate = sess.Rate()
	settings.Volume = sess.Volume()
	if p, ok := sess.Playlist().Current(); ok {
		settings.LastDir = filepath.Dir(p)
	}
	if err := config.Save(sPath, settings); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}

	log.Printf("Player stopped")
}
