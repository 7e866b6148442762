// Package common holds enumerations shared between fragment construction,
// configuration and post processing so that none of them have to depend on
// each other.
package common

// Specification of Quarto callout flavor.
// ENUM(note, tip, warning, caution, important)
type CalloutType int

// Specification of Bootstrap alert flavor.
// ENUM(info, success, warning, danger, primary, secondary)
type AlertType int

// Specification of Bootstrap theme color used by progress bars and buttons.
// ENUM(primary, secondary, success, info, warning, danger, light, dark)
type ThemeColor int

// Specification of button sizing.
// ENUM(md, sm, lg)
type ButtonSize int

// Specification of metric change direction.
// ENUM(neutral, positive, negative)
type ChangeType int

// Specification of iframe loading behavior.
// ENUM(lazy, eager)
type LoadingMode int

// Specification of embedded tweet color scheme.
// ENUM(light, dark)
type TweetTheme int
