// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import "strings"

// dimensionBySkill maps detected skill names to bank dimensions. Skills
// without a bank (Python, Lua, Java, Go, GDScript, and the Unreal,
// Cocos, and Godot engines) map to nothing and produce no section.
var dimensionBySkill = map[string]string{
	"C#":    "csharp",
	"C++":   "cpp",
	"Unity": "unity",

	"Shader":          "graphics",
	"Render Pipeline": "graphics",

	"Algorithms":      "datastructure",
	"Data Structures": "datastructure",
	"Pathfinding":     "datastructure",

	"Network Sync": "network",

	"Performance Optimization": "optimization",
	"Memory Optimization":      "optimization",
	"Hot Update":               "optimization",
	"Async Loading":            "optimization",
	"Object Pool":              "optimization",

	"UI Framework": "ui",

	"Design Patterns": "designpattern",

	"Behavior Tree": "ai",
	"State Machine": "ai",

	"ECS":          "unity",
	"DOTS":         "unity",
	"AssetBundle":  "unity",
	"Addressables": "unity",
	"Physics":      "unity",

	"Git": "general",
}

// dimensionKeys is the substring-fallback probe order, most specific
// first so "graphics" wins before the two-letter keys get a chance.
var dimensionKeys = []string{
	"datastructure", "designpattern", "optimization", "graphics",
	"network", "csharp", "unity", "cpp", "ui", "ai",
}

// DimensionFor resolves a skill name to a bank dimension. Exact matches
// win; otherwise a lowercase substring probe catches variants the map
// does not list. Unmapped skills return false.
func DimensionFor(skill string) (string, bool) {
	if dim, ok := dimensionBySkill[skill]; ok {
		return dim, true
	}
	lower := strings.ToLower(skill)
	for _, key := range dimensionKeys {
		if strings.Contains(lower, key) {
			return key, true
		}
	}
	return "", false
}
