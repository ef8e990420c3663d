/*
 * config.go, part of embcluster.
 *
 * Copyright 2024 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config reads, validates and writes the YAML configuration of
//embcluster, and turns it into the options of the other packages.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rmera/embcluster/ecp"
	"gopkg.in/yaml.v3"
)

//Config is the configuration of a run. The cluster keys are at the top level, the
//rest is grouped in sections.
type Config struct {
	Structure StructureConfig `yaml:"structure"`
	Crystal   *CrystalConfig  `yaml:"crystal,omitempty"`

	CentralSite    int     `yaml:"central_site" validate:"gte=-1"`
	CentralElement string  `yaml:"central_element,omitempty"`
	Policy         string  `yaml:"policy" validate:"oneof=radial bond_shells shells"`
	QCRadius       float64 `yaml:"qc_radius" validate:"gte=0"`
	BRRadius       float64 `yaml:"br_radius" validate:"gte=0"`
	PCCutoff       float64 `yaml:"pc_cutoff" validate:"gt=0"`
	QCShells       int     `yaml:"qc_shells" validate:"gte=0"`
	BRShells       int     `yaml:"br_shells" validate:"gte=0"`

	TargetCharge        int                `yaml:"target_charge"`
	Multiplicity        int                `yaml:"multiplicity" validate:"gte=1"`
	MaxChargeCorrection float64            `yaml:"max_charge_correction" validate:"gte=0"`
	FormalCharges       map[string]float64 `yaml:"formal_charges,omitempty"`

	ECPTable      ECPTable              `yaml:"ecp_table,omitempty"`            //file name or element->parameters mapping
	ECPs          map[string]ecp.Params `yaml:"ecps,omitempty" validate:"dive"` //added on top of ecp_table
	CapBondLength map[string]float64    `yaml:"cap_bond_length,omitempty" validate:"dive,gt=0"`

	CovalentRadii map[string]float64 `yaml:"covalent_radii,omitempty" validate:"dive,gt=0"`
	BondTolerance float64            `yaml:"bond_tolerance" validate:"gte=0"`
	MinDistance   float64            `yaml:"min_distance" validate:"gt=0"`
	Tolerance     float64            `yaml:"tolerance" validate:"gte=0"`

	Output  OutputConfig  `yaml:"output"`
	Orca    OrcaConfig    `yaml:"orca"`
	Sweep   *SweepConfig  `yaml:"sweep,omitempty"`
	Logging LoggingConfig `yaml:"logging"`

	dir string //relative paths are resolved from here
}

//StructureConfig tells where the structure comes from, when it is not
//given as a crystal.
type StructureConfig struct {
	File    string             `yaml:"file,omitempty"` //xyz, optionally .gz or .zst
	Charges map[string]float64 `yaml:"charges,omitempty"` //input charges by element
	Center  bool               `yaml:"center,omitempty"` //move the centroid to the origin
}

//OutputConfig are the files written after building the cluster. Empty
//names are not written.
type OutputConfig struct {
	Input        string  `yaml:"input,omitempty"` //ORCA input
	PointCharges string  `yaml:"point_charges,omitempty"`
	XYZ          string  `yaml:"xyz,omitempty"`
	Plot         string  `yaml:"plot,omitempty"`
	PlotWidth    float64 `yaml:"plot_width,omitempty" validate:"gte=0"`
	Report       bool    `yaml:"report,omitempty"`
}

//OrcaConfig are the settings of the ORCA calculation.
type OrcaConfig struct {
	Method       string   `yaml:"method,omitempty"`
	Basis        string   `yaml:"basis,omitempty"`
	HighBasis    string   `yaml:"high_basis,omitempty"`
	HBElements   []string `yaml:"high_basis_elements,omitempty"`
	HBCentral    bool     `yaml:"high_basis_central,omitempty"`
	RI           bool     `yaml:"ri"`
	RIJ          bool     `yaml:"rijcosx,omitempty"`
	Dispersion   string   `yaml:"dispersion,omitempty"`
	Grid         int      `yaml:"grid,omitempty" validate:"gte=0,lte=9"`
	SCFTightness int      `yaml:"scf_tightness,omitempty" validate:"gte=0,lte=2"`
	SCFConvHelp  int      `yaml:"scf_conv_help,omitempty" validate:"gte=0,lte=2"`
	Memory       int      `yaml:"memory,omitempty" validate:"gte=0"`
	NCPU         int      `yaml:"ncpu,omitempty" validate:"gte=0"`
	Others       string   `yaml:"others,omitempty"`
}

//SweepConfig lists the values tried in a sweep. Every combination is built.
//Empty lists take the value of the main configuration.
type SweepConfig struct {
	CentralSites []int     `yaml:"central_sites,omitempty" validate:"dive,gte=-1"`
	QCRadii      []float64 `yaml:"qc_radii,omitempty" validate:"dive,gt=0"`
	BRRadii      []float64 `yaml:"br_radii,omitempty" validate:"dive,gt=0"`
	Workers      int       `yaml:"workers,omitempty" validate:"gte=0"`
	OutputDir    string    `yaml:"output_dir,omitempty"`
}

//LoggingConfig sets the level and format of the logs.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

var validate = validator.New()

//Default returns the configuration with the default values. The radii
//and the structure still need to be set.
func Default() *Config {
	return &Config{
		CentralSite:         -1,
		Policy:              "radial",
		PCCutoff:            20,
		Multiplicity:        1,
		MaxChargeCorrection: 1.0,
		BondTolerance:       0.45,
		MinDistance:         0.1,
		Tolerance:           1e-6,
		Output:              OutputConfig{PlotWidth: 0.5},
		Orca:                OrcaConfig{RI: true, Dispersion: "D3", SCFTightness: 1},
		Logging:             LoggingConfig{Level: "info", Format: "console"},
		dir:                 ".",
	}
}

//Read reads a configuration in YAML format from r, on top of the defaults,
//and validates it.
func Read(r io.Reader) (*Config, error) {
	C := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(C); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := C.Validate(); err != nil {
		return nil, err
	}
	return C, nil
}

//Load reads the configuration file name. Relative paths in the file are
//taken from the directory of the file.
func Load(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening configuration: %w", err)
	}
	defer f.Close()
	C, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	C.dir = filepath.Dir(name)
	return C, nil
}

//Write writes the configuration in YAML format to w.
func (C *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(C); err != nil {
		return err
	}
	return enc.Close()
}

//Save writes the configuration to the file name.
func (C *Config) Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := C.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//Validate checks the struct tags and the constraints among fields.
func (C *Config) Validate() error {
	if err := validate.Struct(C); err != nil {
		return formatValidationError(err)
	}
	if C.Crystal != nil && C.Structure.File != "" {
		return fmt.Errorf("invalid configuration: give either structure.file or crystal, not both")
	}
	if C.Crystal == nil && C.Structure.File == "" {
		return fmt.Errorf("invalid configuration: no structure.file nor crystal given")
	}
	if C.Orca.RI && C.Orca.RIJ {
		return fmt.Errorf("invalid configuration: orca.ri and orca.rijcosx are exclusive")
	}
	opts, err := C.Cluster()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

//Path returns name relative to the directory of the configuration file, if it is
//not absolute.
func (C *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(C.dir, name)
}

//ECP returns the ECP table: the ecp_table file or mapping, if given, with
//the ecps entries and the cap lengths of the configuration on top.
func (C *Config) ECP() (*ecp.Table, error) {
	T := ecp.NewTable()
	if f := C.ECPTable.File; f != "" {
		var err error
		T, err = ecp.ReadFile(C.Path(f))
		if err != nil {
			return nil, err
		}
	}
	entries := make(map[string]ecp.Params, len(C.ECPTable.Entries)+len(C.ECPs))
	for el, p := range C.ECPTable.Entries {
		entries[el] = p
	}
	for el, p := range C.ECPs {
		entries[el] = p
	}
	inline, err := ecp.FromMaps(entries, C.CapBondLength)
	if err != nil {
		return nil, err
	}
	for _, el := range inline.Elements() {
		p, _ := inline.Get(el)
		T.Add(el, p)
	}
	for k, d := range C.CapBondLength {
		e1, e2, _ := ecp.ParsePair(k)
		T.SetCapLength(e1, e2, d)
	}
	return T, nil
}

//formatValidationError turns validator errors into one readable error.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gt", "gte", "lt", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s, got %v", field, e.Tag(), e.Param(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
