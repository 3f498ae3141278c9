// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/pkg/types"
)

// descriptionLimit bounds the stored project description, in runes.
const descriptionLimit = 500

// minBlockLen filters out fragments too short to be a project block.
const minBlockLen = 20

// garbledNotice replaces a description whose cleaned text is unusable.
const garbledNotice = "Description unreadable: source text was garbled during extraction."

// projectHeaderStartRe marks lines that begin a new project block inside
// the projects section.
var projectHeaderStartRe = regexp.MustCompile(`^\s*(?:项目\s*[一二三四五六七八九十\d]*\s*[：:．.、]|【|[◆●■▶•]|\d{1,2}\s*[、.．)）]\s*|(?i:Project)\s*\d*\s*[：:])`)

// headerMarkerRe strips the block-header marker off the first line when
// that line is used as a project name candidate.
var headerMarkerRe = regexp.MustCompile(`^\s*(?:项目\s*[一二三四五六七八九十\d]*\s*[：:．.、]?|\d{1,2}\s*[、.．)）]\s*|(?i:Project)\s*\d*\s*[：:]?)\s*`)

var projectNameLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:项目名称|项目名)\s*[：:]?\s*([^\n]{2,40})`),
	regexp.MustCompile(`(?im)^\s*project\s+name\s*[：:]\s*([^\n]{2,40})`),
}

var quotedNameRes = []*regexp.Regexp{
	regexp.MustCompile(`《([^《》]{2,30})》`),
	regexp.MustCompile(`「([^「」]{2,30})」`),
	regexp.MustCompile(`“([^“”]{2,30})”`),
}

// typeKeywords classifies a project; the first group with a hit wins.
var typeKeywords = []struct {
	ptype    types.ProjectType
	keywords []string
}{
	{types.Type2D, []string{"2D", "2d", "横版", "平台跳跃", "platformer", "Platformer"}},
	{types.Type3D, []string{"3D", "3d", "三维"}},
	{types.TypeFPS, []string{"FPS", "射击", "第一人称", "first-person", "Shooter", "shooter"}},
	{types.TypeRPG, []string{"RPG", "角色扮演", "role-playing"}},
	{types.TypeMultiplayer, []string{"对战", "PVP", "PvP", "MOBA", "联机", "多人在线", "multiplayer", "Multiplayer"}},
}

var roleLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:担任|角色|职责|职位)\s*[：:]?\s*([^\n，。；,.;]{2,20})`),
	regexp.MustCompile(`(?im)^\s*role\s*[：:]\s*([^\n,.;]{2,30})`),
}

// roleNouns assigns a role from bare keywords when no role label exists.
var roleNouns = []struct {
	keywords []string
	role     string
}{
	{[]string{"主程序", "主程"}, "主程序"},
	{[]string{"独立开发", "独立完成", "个人项目"}, "独立开发"},
	{[]string{"客户端"}, "客户端开发"},
	{[]string{"服务端", "服务器"}, "服务端开发"},
	{[]string{"Lead Programmer", "lead programmer"}, "Lead Programmer"},
	{[]string{"Gameplay Programmer", "gameplay programmer"}, "Gameplay Programmer"},
	{[]string{"Solo Developer", "solo developer"}, "Solo Developer"},
}

// coreSystemDefs lists the recognized gameplay subsystem categories with
// their explicit keyword sets. Middleware names (Wwise, FMOD) are left
// out of the audio keywords on purpose: their presence drives inference,
// not an explicit hit.
var coreSystemDefs = []struct {
	name     string
	keywords []string
}{
	{"combat", []string{"战斗系统", "技能系统", "连招", "Buff", "伤害计算", "combat system", "Combat", "skill system"}},
	{"ai", []string{"敌人AI", "怪物AI", "行为树", "状态机", "寻路", "enemy AI", "behavior tree", "AI系统"}},
	{"netcode", []string{"网络同步", "帧同步", "状态同步", "联机对战", "netcode", "network sync", "multiplayer sync"}},
	{"ui", []string{"UI系统", "UI框架", "界面系统", "UGUI", "FairyGUI", "HUD"}},
	{"resource-management", []string{"资源管理", "资源加载", "AssetBundle", "Addressable", "对象池", "asset management", "resource loading"}},
	{"physics", []string{"物理系统", "物理引擎", "碰撞检测", "刚体", "physics", "collision"}},
	{"rendering", []string{"渲染", "Shader", "光照", "后处理", "rendering", "lighting", "post-processing"}},
	{"audio", []string{"音频系统", "音效系统", "声音系统", "audio system", "sound system", "音效"}},
	{"animation", []string{"动画系统", "骨骼动画", "Animator", "Timeline", "animation system", "skeletal animation"}},
	{"narrative", []string{"剧情系统", "对话系统", "任务系统", "narrative", "dialogue system", "quest system"}},
	{"economy", []string{"经济系统", "商店系统", "背包系统", "道具系统", "economy", "shop system", "inventory"}},
}

var unityMarkers = []string{"Unity", "unity", "U3D"}
var audioMiddleware = []string{"Wwise", "wwise", "FMOD"}
var serverMarkers = []string{"服务端", "服务器", "server", "Server"}

// extractProjects segments the projects section into blocks and parses
// each one, capped at MaxProjects. A resume without a recognizable
// projects section yields no projects.
func extractProjects(lines []string, log *zap.Logger) []*types.Project {
	body := sectionLines(lines, projectHeadingRe)
	if body == nil {
		log.Debug("no projects section found")
		return nil
	}

	var projects []*types.Project
	for _, block := range blockify(body) {
		p := parseProject(block, len(projects)+1, log)
		projects = append(projects, p)
		if len(projects) >= types.MaxProjects {
			break
		}
	}
	return projects
}

// blockify splits section lines into project blocks at header-looking
// lines. Content before the first header forms its own block. Blocks
// shorter than minBlockLen runes are dropped.
func blockify(body []string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		block := strings.TrimSpace(strings.Join(cur, "\n"))
		if len([]rune(block)) >= minBlockLen {
			blocks = append(blocks, block)
		}
		cur = nil
	}
	for _, line := range body {
		if projectHeaderStartRe.MatchString(line) && len(cur) > 0 {
			flush()
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

func parseProject(block string, index int, log *zap.Logger) *types.Project {
	p := &types.Project{
		Name: extractProjectName(block, index),
		Type: classifyType(block),
		Role: extractRole(block),
	}

	cleaned, garbled := Clean(block)
	switch {
	case garbled && !Usable(cleaned):
		p.Description = garbledNotice
		p.Garbled = true
		log.Warn("project description garbled beyond use",
			zap.String("project", p.Name))
	default:
		p.Description = truncateRunes(cleaned, descriptionLimit)
		if garbled {
			log.Warn("project description partially garbled",
				zap.String("project", p.Name))
		}
	}

	p.TechStack = scanTech(block)
	p.CoreSystems = scanCoreSystems(block, p.Role)
	p.TechHighlights = extractHighlights(block)
	p.Contributions = extractContributions(block, p.Role)

	log.Debug("parsed project block",
		zap.String("name", p.Name),
		zap.String("type", string(p.Type)),
		zap.Int("tech", len(p.TechStack)),
		zap.Int("systems", len(p.CoreSystems)))
	return p
}

// extractProjectName resolves a block's name: explicit label, quoted
// title, the cleaned header line when it passes the title gate, then a
// positional fallback.
func extractProjectName(block string, index int) string {
	for _, re := range projectNameLabelRes {
		if m := re.FindStringSubmatch(block); m != nil {
			if v := trimField(m[1]); v != "" {
				return truncateRunes(v, maxTitleLen)
			}
		}
	}
	for _, re := range quotedNameRes {
		if m := re.FindStringSubmatch(block); m != nil {
			if v := trimField(m[1]); v != "" {
				return truncateRunes(v, maxTitleLen)
			}
		}
	}
	first, _, _ := strings.Cut(block, "\n")
	first = trimLineDecoration(headerMarkerRe.ReplaceAllString(first, ""))
	if validCandidateTitle(first) {
		return first
	}
	return fmt.Sprintf("Project %d", index)
}

func classifyType(block string) types.ProjectType {
	for _, tk := range typeKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(block, kw) {
				return tk.ptype
			}
		}
	}
	return types.TypeGeneric
}

func extractRole(block string) string {
	for _, re := range roleLabelRes {
		if m := re.FindStringSubmatch(block); m != nil {
			if v := trimField(m[1]); v != "" {
				return v
			}
		}
	}
	for _, rn := range roleNouns {
		for _, kw := range rn.keywords {
			if strings.Contains(block, kw) {
				return rn.role
			}
		}
	}
	return ""
}

// scanCoreSystems attributes subsystem categories to a block. Explicit
// keyword hits win; when nothing matches explicitly, contextual
// inference fills in likely systems and marks them as inferred.
func scanCoreSystems(block, role string) []types.CoreSystem {
	var systems []types.CoreSystem
	for _, def := range coreSystemDefs {
		for _, kw := range def.keywords {
			if strings.Contains(block, kw) {
				systems = append(systems, types.CoreSystem{Name: def.name})
				break
			}
		}
	}
	if len(systems) > 0 {
		return systems
	}

	if containsAny(block, unityMarkers) {
		systems = append(systems,
			types.CoreSystem{Name: "resource-management", Inferred: true},
			types.CoreSystem{Name: "ui", Inferred: true},
			types.CoreSystem{Name: "animation", Inferred: true},
		)
	}
	if containsAny(block, audioMiddleware) {
		systems = append(systems, types.CoreSystem{Name: "audio", Inferred: true})
	}
	if containsAny(block, serverMarkers) || containsAny(role, serverMarkers) {
		systems = append(systems, types.CoreSystem{Name: "netcode", Inferred: true})
	}
	return systems
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
