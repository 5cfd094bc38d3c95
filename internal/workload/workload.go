// Package workload reads process definitions from YAML or CSV files and
// loads them into a registry.
package workload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidProcess    = errors.New("invalid process")
	ErrUnsupportedFormat = errors.New("unsupported workload format")
)

// ProcessSpec is one (arrival, burst, priority) definition.
type ProcessSpec struct {
	ArrivalTime int `yaml:"arrival_time"`
	BurstTime   int `yaml:"burst_time"`
	Priority    int `yaml:"priority"`
}

// Spec is the YAML workload document.
type Spec struct {
	Processes []ProcessSpec `yaml:"processes"`
}

// Validate rejects negative arrival times and non-positive bursts.
func (s ProcessSpec) Validate() error {
	if s.ArrivalTime < 0 {
		return fmt.Errorf("%w: arrival time %d is negative", ErrInvalidProcess, s.ArrivalTime)
	}
	if s.BurstTime <= 0 {
		return fmt.Errorf("%w: burst time %d must be positive", ErrInvalidProcess, s.BurstTime)
	}
	return nil
}

// LoadFile reads a workload, choosing the parser by file extension
// (.yaml, .yml or .csv).
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload %s: %w", path, err)
	}

	var spec *Spec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		spec, err = ParseYAML(data)
	case ".csv":
		spec, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing workload %s: %w", path, err)
	}
	return spec, nil
}

// ParseYAML decodes a workload document strictly; unknown fields are errors.
func ParseYAML(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseCSV reads rows of "arrival,burst[,priority]". A first row whose
// arrival column is not a number is treated as a header.
func ParseCSV(r io.Reader) (*Spec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	spec := &Spec{Processes: make([]ProcessSpec, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && len(row) > 0 {
			if _, err := strconv.Atoi(row[0]); err != nil {
				continue
			}
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 2 or 3", ErrInvalidProcess, i+1, len(row))
		}
		values := make([]int, 3)
		for j, field := range row {
			values[j], err = strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidProcess, i+1, j+1, err)
			}
		}
		spec.Processes = append(spec.Processes, ProcessSpec{
			ArrivalTime: values[0],
			BurstTime:   values[1],
			Priority:    values[2],
		})
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *Spec) Validate() error {
	for i, p := range s.Processes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("process %d: %w", i+1, err)
		}
	}
	return nil
}

// Registry builds a fresh registry holding the workload in file order.
func (s *Spec) Registry() *core.Registry {
	registry := core.NewRegistry()
	for _, p := range s.Processes {
		registry.Add(p.ArrivalTime, p.BurstTime, p.Priority)
	}
	return registry
}
