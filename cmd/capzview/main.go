// Command capzview attaches to a capz StreamSink and renders its
// event stream in the terminal.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/capz"
)

var log = logrus.New()

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:          "capzview",
		Short:        "Attach to a capz stream sink and view its events",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&flagAddr, "addr", capz.DefaultStreamAddr,
		"address of the stream sink to attach to")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(watchCmd(), dumpCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var flagAddr string

// attach dials the sink and returns the connection plus a decoder for
// its JSON-lines event stream.
func attach() (net.Conn, *json.Decoder, error) {
	conn, err := net.Dial("tcp", flagAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("attach to %s: %w", flagAddr, err)
	}
	log.WithField("addr", flagAddr).Debug("attached")
	return conn, json.NewDecoder(conn), nil
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream events to the terminal as they arrive",
		RunE: func(*cobra.Command, []string) error {
			conn, dec, err := attach()
			if err != nil {
				return err
			}
			defer conn.Close()

			for {
				var ev capz.Event
				if err := dec.Decode(&ev); err != nil {
					log.WithError(err).Debug("stream ended")
					return nil
				}
				fmt.Println(renderEvent(ev))
			}
		},
	}
}

func dumpCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Collect events for a while, then print a summary",
		RunE: func(*cobra.Command, []string) error {
			conn, dec, err := attach()
			if err != nil {
				return err
			}
			defer conn.Close()

			sum := newSummary()
			deadline := time.Now().Add(duration)
			_ = conn.SetReadDeadline(deadline)
			for {
				var ev capz.Event
				if err := dec.Decode(&ev); err != nil {
					var netErr net.Error
					if !errors.As(err, &netErr) || !netErr.Timeout() {
						log.WithError(err).Debug("stream ended early")
					}
					break
				}
				sum.add(ev)
			}

			sum.print(os.Stdout)
			return nil
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 5*time.Second,
		"how long to collect before summarizing")
	return cmd
}
