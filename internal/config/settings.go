package config

import (
	"errors"
	"fmt"
)

// ErrUnknownSetting is returned for a setting name not in SettingNames.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingNames lists the settings in display order.
var SettingNames = []string{"notifications", "dark_mode", "sound_effects"}

// SettingInfo describes a setting for display.
type SettingInfo struct {
	Name        string
	Title       string
	Description string
}

var settingInfo = map[string]SettingInfo{
	"notifications": {"notifications", "Notifications", "Receive reminders for tasks"},
	"dark_mode":     {"dark_mode", "Dark Mode", "Use dark theme"},
	"sound_effects": {"sound_effects", "Sound Effects", "Play sounds for actions"},
}

// Info returns the display information for a setting.
func Info(name string) (SettingInfo, error) {
	info, ok := settingInfo[name]
	if !ok {
		return SettingInfo{}, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return info, nil
}

// Get returns the value of the named setting.
func (s Settings) Get(name string) (bool, error) {
	p, err := s.field(name)
	if err != nil {
		return false, err
	}
	return *p, nil
}

// Set changes the named setting.
func (s *Settings) Set(name string, on bool) error {
	p, err := s.field(name)
	if err != nil {
		return err
	}
	*p = on
	return nil
}

func (s *Settings) field(name string) (*bool, error) {
	switch name {
	case "notifications":
		return &s.Notifications, nil
	case "dark_mode":
		return &s.DarkMode, nil
	case "sound_effects":
		return &s.SoundEffects, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
}
