// Package session drives one interactive run: pick a configuration, pick
// vehicles, confirm, then copy.
package session

import (
	"errors"
	"io"

	"github.com/spf13/afero"

	"github.com/zinrai/iracing-wheel-config/internal/config"
	"github.com/zinrai/iracing-wheel-config/internal/copier"
	"github.com/zinrai/iracing-wheel-config/internal/finder"
	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/prompt"
	"github.com/zinrai/iracing-wheel-config/internal/ui"
	"github.com/zinrai/iracing-wheel-config/internal/utils"
)

// Prompts and messages shown during a session
const (
	ConfigsTitle      = "SELECT CONFIGURATION FILE OPTIONS"
	ConfigQuestion    = "Select controller configuration: "
	VehiclesTitle     = "SELECT VEHICLES"
	VehicleQuestion   = "Select Car to move config to: "
	AnotherQuestion   = "Would you like to select another vehicle (y/n): "
	ConfirmQuestion   = "Are you sure you want to apply the selected configuration to the listed cars? This action cannot be undone. (y/n): "
	SuccessMessage    = "Configuration files have been successfully applied."
	SelectedVehicles  = "Selected vehicles:"
	VehiclesCountLine = "Vehicles discovered: %d"
)

var (
	// ErrNoConfigs is returned when the configs root has no valid bundle.
	ErrNoConfigs = errors.New("no valid configuration directories found")
	// ErrNoVehicles is returned when the setups root is empty.
	ErrNoVehicles = errors.New("no vehicle directories found")
)

// Outcome of a session
type Result struct {
	Config   finder.ConfigDir
	Vehicles []string
	// False when the user declined the confirmation
	Applied bool
}

// Session owns the selection state of one run
type Session struct {
	fs      afero.Fs
	cfg     *config.Config
	prompt  *prompt.Prompter
	printer *ui.Printer

	configs  []finder.ConfigDir
	vehicles []string
	selected []string
}

func New(fsys afero.Fs, cfg *config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		fs:      fsys,
		cfg:     cfg,
		prompt:  prompt.New(in, out),
		printer: ui.NewPrinter(out),
	}
}

// Runs the session to completion. Filesystem errors end the run; invalid
// answers are asked again. Declining the confirmation is not an error.
func (s *Session) Run() (*Result, error) {
	if err := s.discover(); err != nil {
		return nil, err
	}

	configIndex, err := s.selectConfig()
	if err != nil {
		return nil, err
	}
	chosen := s.configs[configIndex]

	if err := s.selectVehicles(); err != nil {
		return nil, err
	}

	result := &Result{
		Config:   chosen,
		Vehicles: append([]string(nil), s.selected...),
	}

	confirmed, err := s.confirm()
	if err != nil {
		return nil, err
	}
	if !confirmed {
		logger.Info("Confirmation declined, nothing copied")
		return result, nil
	}

	if _, err := copier.Apply(s.fs, chosen, s.cfg.SetupsRoot, s.selected); err != nil {
		return result, err
	}
	result.Applied = true

	s.printer.Blank()
	s.printer.Success(SuccessMessage)
	return result, nil
}

// Reads both roots up front, vehicles first
func (s *Session) discover() error {
	vehicles, err := finder.ListEntries(s.fs, s.cfg.SetupsRoot)
	if err != nil {
		return err
	}
	s.printer.Line(VehiclesCountLine, len(vehicles))

	configs, err := finder.DiscoverConfigs(s.fs, s.cfg.ConfigsRoot, s.printer.Writer())
	if err != nil {
		return err
	}
	s.printer.Blank()

	if len(configs) == 0 {
		return utils.NewError(utils.ErrInvalidConfig, s.cfg.ConfigsRoot, ErrNoConfigs)
	}
	if len(vehicles) == 0 {
		return utils.NewError(utils.ErrInvalidConfig, s.cfg.SetupsRoot, ErrNoVehicles)
	}

	s.vehicles = vehicles
	s.configs = configs
	return nil
}

func (s *Session) selectConfig() (int, error) {
	names := make([]string, len(s.configs))
	for i, c := range s.configs {
		names[i] = c.Name
	}
	s.printer.Title(ConfigsTitle)
	s.printer.List(names)
	s.printer.Blank()

	index, err := s.prompt.Index(ConfigQuestion, len(s.configs))
	if err != nil {
		return 0, err
	}
	s.printer.Line("%s selected", s.configs[index].Name)
	return index, nil
}

// Appends vehicles until the user answers "n" to the another-vehicle
// question. Duplicates are kept.
func (s *Session) selectVehicles() error {
	s.printer.Blank()
	s.printer.Title(VehiclesTitle)
	s.printer.List(s.vehicles)
	s.printer.Blank()

	for {
		index, err := s.prompt.Index(VehicleQuestion, len(s.vehicles))
		if err != nil {
			return err
		}
		s.selected = append(s.selected, s.vehicles[index])
		logger.Debug("Vehicle selected", "vehicle", s.vehicles[index], "count", len(s.selected))

		answer, err := s.prompt.Ask(AnotherQuestion)
		if err != nil {
			return err
		}
		if prompt.IsNo(answer) {
			return nil
		}
	}
}

func (s *Session) confirm() (bool, error) {
	s.printer.Blank()
	s.printer.Line("%s", SelectedVehicles)
	for _, vehicle := range s.selected {
		s.printer.Line("  %s", vehicle)
	}
	return s.prompt.Confirm(ConfirmQuestion)
}
