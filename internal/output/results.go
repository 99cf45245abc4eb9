package output

// RenderResult is the top-level output of the `render` command.
type RenderResult struct {
	Fixture string `yaml:"fixture" json:"fixture"`
	Mode    string `yaml:"mode" json:"mode"`
	ForAI   bool   `yaml:"forAI,omitempty" json:"forAI,omitempty"`
	Tree    string `yaml:"tree" json:"tree"`
}

// MatchResult is the top-level output of the `match` command.
type MatchResult struct {
	Fixture    string `yaml:"fixture" json:"fixture"`
	Template   string `yaml:"template" json:"template"`
	Matched    bool   `yaml:"matched" json:"matched"`
	MatchCount int    `yaml:"matchCount" json:"matchCount"`
	Raw        string `yaml:"raw" json:"raw"`
	Regex      string `yaml:"regex" json:"regex"`
	DiffTarget string `yaml:"diffTarget,omitempty" json:"diffTarget,omitempty"`
}

// FindEntry describes one matching subtree found by `find`.
type FindEntry struct {
	Ref  string `yaml:"ref,omitempty" json:"ref,omitempty"`
	Role string `yaml:"role" json:"role"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// FindResult is the top-level output of the `find` command.
type FindResult struct {
	Fixture  string      `yaml:"fixture" json:"fixture"`
	Template string      `yaml:"template" json:"template"`
	Count    int         `yaml:"count" json:"count"`
	Matches  []FindEntry `yaml:"matches" json:"matches"`
}

// RoleInfo describes which state attributes one ARIA role admits.
type RoleInfo struct {
	Role     string `yaml:"role" json:"role"`
	Checked  bool   `yaml:"checked,omitempty" json:"checked,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty" json:"expanded,omitempty"`
	Level    bool   `yaml:"level,omitempty" json:"level,omitempty"`
	Pressed  bool   `yaml:"pressed,omitempty" json:"pressed,omitempty"`
	Selected bool   `yaml:"selected,omitempty" json:"selected,omitempty"`
}

// RolesResult is the top-level output of the `list-roles` command.
type RolesResult struct {
	Roles []RoleInfo `yaml:"roles" json:"roles"`
}
