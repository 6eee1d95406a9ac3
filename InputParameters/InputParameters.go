package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title   string     `yaml:"Title"`
	Domain  [4]float64 `yaml:"Domain"` // xmin, ymin, xmax, ymax of the fundamental period
	Kernel  string     `yaml:"Kernel"` // "bowyerwatson" (default) or "shewchuk"
	Verbose bool       `yaml:"Verbose"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, mp); err != nil {
		return err
	}
	if mp.Domain == [4]float64{} {
		mp.Domain = [4]float64{0, 0, 1, 1}
	}
	return nil
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%8.5f,%8.5f]x[%8.5f,%8.5f]\t= Domain\n",
		mp.Domain[0], mp.Domain[2], mp.Domain[1], mp.Domain[3])
	fmt.Printf("[%s]\t\t\t= Kernel\n", mp.Kernel)
}
