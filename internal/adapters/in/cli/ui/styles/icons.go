package styles

// Status markers. They stay ASCII so output reads the same in logs, pipes
// and terminals without a Nerd Font.
const (
	IconSuccess = "[OK]"
	IconError   = "[X]"
	IconWarning = "[!]"
	IconInfo    = "[i]"
	IconBullet  = ">"
)
