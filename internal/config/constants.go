package config

import "time"

// Base application details
const AppName = "restyle"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "restyle.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults, overridable in [editor].
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
