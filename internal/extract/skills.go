// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/devscreen/pkg/types"
)

// skillEntry maps one canonical skill name to the surface forms it may
// take in resume text. Matching is case-sensitive substring search, so
// common casings are listed explicitly; bare lowercase forms that
// collide with English prose (go, java as part of javascript) are
// deliberately narrow.
type skillEntry struct {
	canonical string
	synonyms  []string
}

var languageSkills = []skillEntry{
	{"C#", []string{"C#", "c#", "CSharp", "csharp"}},
	{"C++", []string{"C++", "c++", "CPP"}},
	{"Python", []string{"Python", "python"}},
	{"Lua", []string{"Lua", "lua", "xLua", "ToLua"}},
	{"Java", []string{"Java", "java"}},
	{"JavaScript", []string{"JavaScript", "Javascript", "javascript"}},
	{"TypeScript", []string{"TypeScript", "typescript"}},
	{"Go", []string{"Golang", "golang", "Go语言"}},
	{"GDScript", []string{"GDScript", "gdscript"}},
}

var engineSkills = []skillEntry{
	{"Unity", []string{"Unity", "unity", "Unity3D", "unity3d", "U3D"}},
	{"Unreal", []string{"Unreal", "UE4", "UE5", "虚幻"}},
	{"Cocos", []string{"Cocos", "cocos", "CocosCreator"}},
	{"Godot", []string{"Godot", "godot"}},
}

var domainSkills = []skillEntry{
	{"ECS", []string{"ECS", "Entity Component System"}},
	{"DOTS", []string{"DOTS"}},
	{"Shader", []string{"Shader", "shader", "着色器", "ShaderLab", "HLSL", "GLSL"}},
	{"Render Pipeline", []string{"渲染管线", "Render Pipeline", "URP", "HDRP", "SRP"}},
	{"Performance Optimization", []string{"性能优化", "帧率优化", "performance optimization", "Performance Optimization"}},
	{"Memory Optimization", []string{"内存优化", "内存管理", "memory optimization", "Memory Optimization"}},
	{"Network Sync", []string{"网络同步", "帧同步", "状态同步", "netcode", "Netcode"}},
	{"Behavior Tree", []string{"行为树", "Behavior Tree", "behavior tree"}},
	{"State Machine", []string{"状态机", "State Machine", "state machine", "FSM"}},
	{"Pathfinding", []string{"寻路", "A*", "NavMesh", "Pathfinding", "pathfinding"}},
	{"Physics", []string{"物理引擎", "碰撞检测", "physics engine", "Physics", "collision detection"}},
	{"Animation System", []string{"动画系统", "骨骼动画", "Animator", "Timeline", "animation system", "Animation System"}},
	{"Hot Update", []string{"热更新", "热更", "ILRuntime", "HybridCLR", "hot update", "Hot Update"}},
	{"AssetBundle", []string{"AssetBundle", "assetbundle", "AB包"}},
	{"Addressables", []string{"Addressable", "Addressables"}},
	{"Object Pool", []string{"对象池", "Object Pool", "object pool"}},
	{"Async Loading", []string{"异步加载", "UniTask", "多线程", "multithread", "Multithread"}},
	{"Algorithms", []string{"算法", "Algorithm", "algorithm"}},
	{"Data Structures", []string{"数据结构", "Data Structure", "data structure"}},
	{"Design Patterns", []string{"设计模式", "单例", "Design Pattern", "design pattern", "Singleton"}},
	{"UI Framework", []string{"UGUI", "FairyGUI", "NGUI", "UI框架", "UI Toolkit", "UIToolkit"}},
}

var toolSkills = []skillEntry{
	{"Git", []string{"Git", "git", "GitHub", "GitLab", "Gitee"}},
	{"SVN", []string{"SVN", "svn"}},
	{"Perforce", []string{"Perforce", "P4V"}},
	{"Jenkins", []string{"Jenkins", "jenkins"}},
	{"Docker", []string{"Docker", "docker"}},
	{"CMake", []string{"CMake", "cmake"}},
	{"Visual Studio", []string{"Visual Studio", "VS2017", "VS2019", "VS2022"}},
	{"Rider", []string{"Rider"}},
	{"VS Code", []string{"VSCode", "VS Code", "vscode"}},
	{"Wwise", []string{"Wwise", "wwise"}},
	{"FMOD", []string{"FMOD"}},
	{"Blender", []string{"Blender", "blender"}},
	{"Maya", []string{"Maya"}},
	{"3ds Max", []string{"3ds Max", "3dsMax", "3DMax"}},
	{"Photoshop", []string{"Photoshop"}},
	{"Protobuf", []string{"Protobuf", "protobuf", "ProtoBuf"}},
	{"JSON", []string{"JSON"}},
	{"XML", []string{"XML"}},
	{"MySQL", []string{"MySQL", "mysql"}},
	{"Redis", []string{"Redis", "redis"}},
	{"SQLite", []string{"SQLite", "sqlite"}},
	{"Linux", []string{"Linux", "linux"}},
	{"JIRA", []string{"JIRA", "Jira"}},
}

// scanDict returns the canonical names of entries whose synonyms occur
// in text, in dictionary order, each at most once.
func scanDict(text string, entries []skillEntry) []string {
	var found []string
	for _, e := range entries {
		for _, syn := range e.synonyms {
			if strings.Contains(text, syn) {
				found = append(found, e.canonical)
				break
			}
		}
	}
	return found
}

// DetectSkills scans the whole document against the four skill
// dictionaries.
func DetectSkills(text string) types.SkillSet {
	return types.SkillSet{
		Languages: scanDict(text, languageSkills),
		Engines:   scanDict(text, engineSkills),
		Domain:    scanDict(text, domainSkills),
		Tools:     scanDict(text, toolSkills),
	}
}

// scanTech returns the technology names relevant to a single project
// block: languages, engines, and domain skills, tools excluded.
func scanTech(block string) []string {
	var tech []string
	tech = append(tech, scanDict(block, languageSkills)...)
	tech = append(tech, scanDict(block, engineSkills)...)
	tech = append(tech, scanDict(block, domainSkills)...)
	return tech
}
