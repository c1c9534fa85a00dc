// Package workload loads instruction streams from YAML files so a run can
// be described as data instead of hand-assembled words.
package workload

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/npulab/npusim/npu"
)

// A Workload is a named instruction stream ready for submission.
type Workload struct {
	Name         string
	Instructions []npu.Instruction
}

type instSpec struct {
	Op   string `yaml:"op"`
	Src1 uint8  `yaml:"src1"`
	Src2 uint8  `yaml:"src2"`
	Dst  uint8  `yaml:"dst"`
}

type fileSpec struct {
	Name         string     `yaml:"name"`
	Instructions []instSpec `yaml:"instructions"`
}

// Load reads a workload description from r.
func Load(r io.Reader) (*Workload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}

	var spec fileSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}

	w := &Workload{
		Name:         spec.Name,
		Instructions: make([]npu.Instruction, 0, len(spec.Instructions)),
	}

	for i, inst := range spec.Instructions {
		op, err := parseOpcode(inst.Op)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		w.Instructions = append(w.Instructions, npu.Instruction{
			Opcode: op,
			Src1:   inst.Src1,
			Src2:   inst.Src2,
			Dst:    inst.Dst,
		})
	}

	return w, nil
}

// LoadFile reads a workload description from the file at path.
func LoadFile(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func parseOpcode(name string) (npu.Opcode, error) {
	switch strings.ToUpper(name) {
	case "ADD":
		return npu.OpAdd, nil
	case "SUB":
		return npu.OpSub, nil
	case "MUL":
		return npu.OpMul, nil
	case "MAC":
		return npu.OpMac, nil
	case "LOAD":
		return npu.OpLoad, nil
	case "STORE":
		return npu.OpStore, nil
	default:
		return 0, fmt.Errorf("unknown opcode %q", name)
	}
}
