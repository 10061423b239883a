package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultQueueFile = "emergency_queue.yaml"

type queuedLocation struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// queuedEmergency is an emergency request recorded while the server was not
// reachable. The json form is the body of the dispatch endpoint.
type queuedEmergency struct {
	Symptoms      []string        `json:"symptoms" yaml:"symptoms"`
	SeverityLevel int             `json:"severity_level" yaml:"severity_level"`
	Location      *queuedLocation `json:"location,omitempty" yaml:"location,omitempty"`
	Address       string          `json:"address,omitempty" yaml:"address,omitempty"`
	QueuedAt      time.Time       `json:"-" yaml:"queued_at"`
}

func loadQueue(path string) ([]queuedEmergency, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var queue []queuedEmergency
	if err := yaml.Unmarshal(data, &queue); err != nil {
		return nil, fmt.Errorf("parse queue %s: %w", path, err)
	}
	return queue, nil
}

func saveQueue(path string, queue []queuedEmergency) error {
	if len(queue) == 0 {
		queue = []queuedEmergency{}
	}
	data, err := yaml.Marshal(queue)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0600)
}

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Manage emergency requests waiting for connectivity",
	}

	var queueFile string
	cmd.PersistentFlags().StringVar(&queueFile, "queue", defaultQueueFile, "Path of the offline queue")

	cmd.AddCommand(newQueueAddCmd(&queueFile))
	cmd.AddCommand(newQueueListCmd(&queueFile))

	return cmd
}

type queueAddFlags struct {
	symptoms []string
	priority int
	lat      float64
	lng      float64
	address  string
}

func newQueueAddCmd(queueFile *string) *cobra.Command {
	f := &queueAddFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Queue an emergency request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := f.entry(cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng"))
			if err != nil {
				return err
			}
			n, err := appendQueue(*queueFile, entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "queued, %d request(s) waiting\n", n)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&f.symptoms, "symptom", "s", nil, "Symptom, repeat or separate with commas")
	flags.IntVarP(&f.priority, "priority", "p", 0, "Priority from 1 to 5")
	flags.Float64Var(&f.lat, "lat", 0, "Latitude of the patient")
	flags.Float64Var(&f.lng, "lng", 0, "Longitude of the patient")
	flags.StringVar(&f.address, "address", "", "Address of the patient")
	_ = cmd.MarkFlagRequired("symptom")
	_ = cmd.MarkFlagRequired("priority")

	return cmd
}

func (f *queueAddFlags) entry(hasLocation bool) (queuedEmergency, error) {
	var e queuedEmergency

	if f.priority < 1 || f.priority > 5 {
		return e, fmt.Errorf("priority %d out of range 1-5", f.priority)
	}

	for _, s := range f.symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			e.Symptoms = append(e.Symptoms, s)
		}
	}
	if len(e.Symptoms) == 0 {
		return e, fmt.Errorf("at least one symptom is required")
	}

	e.SeverityLevel = f.priority
	e.Address = f.address
	if hasLocation {
		e.Location = &queuedLocation{Latitude: f.lat, Longitude: f.lng}
	}
	e.QueuedAt = time.Now().UTC()
	return e, nil
}

func appendQueue(path string, e queuedEmergency) (int, error) {
	queue, err := loadQueue(path)
	if err != nil {
		return 0, err
	}
	queue = append(queue, e)
	return len(queue), saveQueue(path, queue)
}

func newQueueListCmd(queueFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued emergency requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queue, err := loadQueue(*queueFile)
			if err != nil {
				return err
			}
			return printQueue(cmd.OutOrStdout(), queue)
		},
	}
}

func printQueue(w io.Writer, queue []queuedEmergency) error {
	if len(queue) == 0 {
		_, err := fmt.Fprintln(w, "nothing queued")
		return err
	}
	for i, e := range queue {
		where := e.Address
		if e.Location != nil {
			where = fmt.Sprintf("%.4f,%.4f", e.Location.Latitude, e.Location.Longitude)
		}
		if _, err := fmt.Fprintf(w, "%d\tP%d\t%s\t%s\t%s\n", i+1, e.SeverityLevel,
			e.QueuedAt.Format(time.RFC3339), strings.Join(e.Symptoms, ","), where); err != nil {
			return err
		}
	}
	return nil
}
