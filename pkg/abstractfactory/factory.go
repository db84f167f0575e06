// Package abstractfactory implements the Abstract Factory pattern for a pair of
// UI families: mobile and desktop.
//
// Intent: provide an interface for creating families of related objects
// without specifying their concrete classes. A UIFactory creates an Alert and
// takes a Snapshot of it; both products always come from the same family.
//
// Snapshots are placeholders. No rendering or screen capture takes place, the
// image carried by a Snapshot is always empty.
package abstractfactory

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrUnknownPlatform is returned by ForPlatform for an unsupported platform tag.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrFamilyMismatch is returned when a factory is asked to snapshot an alert
	// created by a different family.
	ErrFamilyMismatch = errors.New("alert belongs to another family")

	// ErrNilAlert is returned when Snapshot is called without an alert.
	ErrNilAlert = errors.New("alert cannot be nil")
)

// Platform identifies a product family.
type Platform string

const (
	// PlatformMobile produces sheet-style alerts
	PlatformMobile Platform = "mobile"

	// PlatformDesktop produces windowed alerts
	PlatformDesktop Platform = "desktop"
)

// Validate checks if the Platform is a valid enum value.
func (p Platform) Validate() error {
	switch p {
	case PlatformMobile, PlatformDesktop:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
}

// Platforms returns every supported platform.
func Platforms() []Platform {
	return []Platform{PlatformDesktop, PlatformMobile}
}

// UIFactory creates the products of one family.
type UIFactory interface {
	// Platform reports the family this factory produces.
	Platform() Platform

	// CreateAlert returns a new alert of this factory's family.
	CreateAlert() Alert

	// Snapshot captures an alert of this factory's family.
	Snapshot(alert Alert) (Snapshot, error)
}

// Snapshot is a captured image of an alert's content view.
type Snapshot struct {
	Platform Platform
	Style    AlertStyle
	Title    string
	Image    image.Image
}

// Empty reports whether the snapshot holds no pixels.
func (s Snapshot) Empty() bool {
	return s.Image == nil || s.Image.Bounds().Empty()
}

// ForPlatform returns the factory for a platform.
func ForPlatform(p Platform) (UIFactory, error) {
	switch p {
	case PlatformMobile:
		return MobileFactory{}, nil
	case PlatformDesktop:
		return DesktopFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
}

// MobileFactory creates mobile alerts and snapshots.
type MobileFactory struct{}

// Platform implements UIFactory.
func (MobileFactory) Platform() Platform {
	return PlatformMobile
}

// CreateAlert implements UIFactory.
func (MobileFactory) CreateAlert() Alert {
	return NewMobileAlert()
}

// Snapshot implements UIFactory.
func (f MobileFactory) Snapshot(alert Alert) (Snapshot, error) {
	return snapshot(f.Platform(), alert)
}

// DesktopFactory creates desktop alerts and snapshots.
type DesktopFactory struct{}

// Platform implements UIFactory.
func (DesktopFactory) Platform() Platform {
	return PlatformDesktop
}

// CreateAlert implements UIFactory.
func (DesktopFactory) CreateAlert() Alert {
	return NewDesktopAlert()
}

// Snapshot implements UIFactory.
func (f DesktopFactory) Snapshot(alert Alert) (Snapshot, error) {
	return snapshot(f.Platform(), alert)
}

func snapshot(family Platform, alert Alert) (Snapshot, error) {
	if alert == nil {
		return Snapshot{}, ErrNilAlert
	}
	if alert.Platform() != family {
		return Snapshot{}, fmt.Errorf("%w: %s factory cannot snapshot a %s alert", ErrFamilyMismatch, family, alert.Platform())
	}

	return Snapshot{
		Platform: family,
		Style:    alert.Style(),
		Title:    alert.Title(),
		Image:    image.NewRGBA(image.Rectangle{}),
	}, nil
}
