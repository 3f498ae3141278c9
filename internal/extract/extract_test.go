package extract

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/pkg/types"
)

const sampleResumeZH = `张伟明
应聘职位：Unity客户端开发工程师
3年游戏开发经验
毕业于华南理工大学 计算机科学 本科

专业技能：
熟悉C#、Lua，了解C++
熟悉Unity引擎，掌握UGUI、AssetBundle热更新
熟悉Git、SVN版本管理

项目经历：
项目1：《星际远征》（3D太空射击）
担任客户端主程序，基于Unity和C#，负责战斗系统和技能系统的设计
实现了基于行为树的敌人AI
性能优化：帧率从30提升到60帧
使用对象池减少内存分配

项目2：仙侠世界MMORPG
角色：客户端开发
负责UI框架和背包系统
实现了AssetBundle热更新流程

工作经历：
2021.07-2024.06 广州游趣网络科技有限公司 Unity开发工程师
`

const sampleResumeEN = `Alex Morgan
Position: Gameplay Programmer
5+ years of game development experience
Massachusetts Institute of Technology, B.S. Computer Science
Tools: Git, Docker, Jenkins

Projects:
Project 1: Voxel Shooter
Built a first-person shooter prototype in Unity using C#
Implemented the enemy AI with behavior trees and A* pathfinding
Reduced load time by 40% with async loading
I wrote the netcode layer for multiplayer matches
`

func TestParseChineseResume(t *testing.T) {
	rec := Parse(sampleResumeZH, zap.NewNop())

	if rec.Name != "张伟明" {
		t.Errorf("Name = %q, want 张伟明", rec.Name)
	}
	if rec.Position != "Unity客户端开发工程师" {
		t.Errorf("Position = %q, want Unity客户端开发工程师", rec.Position)
	}
	if rec.ExperienceYears != "3 years" {
		t.Errorf("ExperienceYears = %q, want 3 years", rec.ExperienceYears)
	}
	if !strings.Contains(rec.Education, "华南理工大学") {
		t.Errorf("Education = %q, want school line", rec.Education)
	}

	if want := []string{"C#", "C++", "Lua"}; !reflect.DeepEqual(rec.Skills.Languages, want) {
		t.Errorf("Languages = %v, want %v", rec.Skills.Languages, want)
	}
	if want := []string{"Unity"}; !reflect.DeepEqual(rec.Skills.Engines, want) {
		t.Errorf("Engines = %v, want %v", rec.Skills.Engines, want)
	}
	wantDomain := []string{"Performance Optimization", "Behavior Tree", "Hot Update", "AssetBundle", "Object Pool", "UI Framework"}
	if !reflect.DeepEqual(rec.Skills.Domain, wantDomain) {
		t.Errorf("Domain = %v, want %v", rec.Skills.Domain, wantDomain)
	}
	if want := []string{"Git", "SVN"}; !reflect.DeepEqual(rec.Skills.Tools, want) {
		t.Errorf("Tools = %v, want %v", rec.Skills.Tools, want)
	}

	if len(rec.Projects) != 2 {
		t.Fatalf("len(Projects) = %d, want 2", len(rec.Projects))
	}

	p1 := rec.Projects[0]
	if p1.Name != "星际远征" {
		t.Errorf("Projects[0].Name = %q, want 星际远征", p1.Name)
	}
	if p1.Type != types.Type3D {
		t.Errorf("Projects[0].Type = %q, want %q", p1.Type, types.Type3D)
	}
	if p1.Role != "客户端主程序" {
		t.Errorf("Projects[0].Role = %q, want 客户端主程序", p1.Role)
	}
	if p1.Garbled {
		t.Error("Projects[0] flagged garbled on clean input")
	}
	wantTech := []string{"C#", "Unity", "Performance Optimization", "Behavior Tree", "Object Pool"}
	if !reflect.DeepEqual(p1.TechStack, wantTech) {
		t.Errorf("Projects[0].TechStack = %v, want %v", p1.TechStack, wantTech)
	}
	wantSystems := []types.CoreSystem{{Name: "combat"}, {Name: "ai"}, {Name: "resource-management"}}
	if !reflect.DeepEqual(p1.CoreSystems, wantSystems) {
		t.Errorf("Projects[0].CoreSystems = %v, want %v", p1.CoreSystems, wantSystems)
	}
	wantHighlights := []string{"基于行为树的敌人AI", "性能优化：帧率从30提升到60帧"}
	if !reflect.DeepEqual(p1.TechHighlights, wantHighlights) {
		t.Errorf("Projects[0].TechHighlights = %v, want %v", p1.TechHighlights, wantHighlights)
	}
	if want := []string{"战斗系统和技能系统的设计"}; !reflect.DeepEqual(p1.Contributions, want) {
		t.Errorf("Projects[0].Contributions = %v, want %v", p1.Contributions, want)
	}

	p2 := rec.Projects[1]
	if p2.Name != "仙侠世界MMORPG" {
		t.Errorf("Projects[1].Name = %q, want 仙侠世界MMORPG", p2.Name)
	}
	if p2.Type != types.TypeRPG {
		t.Errorf("Projects[1].Type = %q, want %q", p2.Type, types.TypeRPG)
	}
	if p2.Role != "客户端开发" {
		t.Errorf("Projects[1].Role = %q, want 客户端开发", p2.Role)
	}
	wantSystems2 := []types.CoreSystem{{Name: "ui"}, {Name: "resource-management"}, {Name: "economy"}}
	if !reflect.DeepEqual(p2.CoreSystems, wantSystems2) {
		t.Errorf("Projects[1].CoreSystems = %v, want %v", p2.CoreSystems, wantSystems2)
	}

	if len(rec.WorkExperience) != 1 || !strings.Contains(rec.WorkExperience[0], "广州游趣") {
		t.Errorf("WorkExperience = %v, want one entry with company", rec.WorkExperience)
	}
}

func TestParseEnglishResume(t *testing.T) {
	rec := Parse(sampleResumeEN, zap.NewNop())

	if rec.Name != "Alex Morgan" {
		t.Errorf("Name = %q, want Alex Morgan", rec.Name)
	}
	if rec.Position != "Gameplay Programmer" {
		t.Errorf("Position = %q, want Gameplay Programmer", rec.Position)
	}
	if rec.ExperienceYears != "5 years" {
		t.Errorf("ExperienceYears = %q, want 5 years", rec.ExperienceYears)
	}
	if !strings.Contains(rec.Education, "Massachusetts Institute of Technology") {
		t.Errorf("Education = %q, want institute line", rec.Education)
	}
	if want := []string{"Git", "Jenkins", "Docker"}; !reflect.DeepEqual(rec.Skills.Tools, want) {
		t.Errorf("Tools = %v, want %v", rec.Skills.Tools, want)
	}

	if len(rec.Projects) != 1 {
		t.Fatalf("len(Projects) = %d, want 1", len(rec.Projects))
	}
	p := rec.Projects[0]
	if p.Name != "Voxel Shooter" {
		t.Errorf("Name = %q, want Voxel Shooter", p.Name)
	}
	if p.Type != types.TypeFPS {
		t.Errorf("Type = %q, want %q", p.Type, types.TypeFPS)
	}
	if p.Role != "" {
		t.Errorf("Role = %q, want empty", p.Role)
	}
	if !strings.Contains(p.Description, "first-person shooter prototype") {
		t.Errorf("Description = %q, want prototype text", p.Description)
	}
	wantSystems := []types.CoreSystem{{Name: "ai"}, {Name: "netcode"}}
	if !reflect.DeepEqual(p.CoreSystems, wantSystems) {
		t.Errorf("CoreSystems = %v, want %v", p.CoreSystems, wantSystems)
	}
	if len(p.TechHighlights) != 3 {
		t.Fatalf("len(TechHighlights) = %d, want 3: %v", len(p.TechHighlights), p.TechHighlights)
	}
	if p.TechHighlights[2] != "Reduced load time by 40% with async loading" {
		t.Errorf("TechHighlights[2] = %q", p.TechHighlights[2])
	}
	if want := []string{"wrote the netcode layer for multiplayer matches"}; !reflect.DeepEqual(p.Contributions, want) {
		t.Errorf("Contributions = %v, want %v", p.Contributions, want)
	}
}

func TestParseGarbledProjectBlock(t *testing.T) {
	doc := "测试用户甲\n项目经历：\n项目1：" + strings.Repeat("◊", 40) + "\n"
	rec := Parse(doc, zap.NewNop())

	if len(rec.Projects) != 1 {
		t.Fatalf("len(Projects) = %d, want 1", len(rec.Projects))
	}
	p := rec.Projects[0]
	if !p.Garbled {
		t.Error("Garbled = false, want true")
	}
	if p.Description != garbledNotice {
		t.Errorf("Description = %q, want placeholder notice", p.Description)
	}
	if p.Name != "Project 1" {
		t.Errorf("Name = %q, want positional fallback", p.Name)
	}
	if p.Type != types.TypeGeneric {
		t.Errorf("Type = %q, want generic", p.Type)
	}
	if len(p.CoreSystems) != 0 {
		t.Errorf("CoreSystems = %v, want none", p.CoreSystems)
	}
}

func TestParseEmptyInput(t *testing.T) {
	rec := Parse("", zap.NewNop())

	for field, got := range map[string]string{
		"Name":            rec.Name,
		"Position":        rec.Position,
		"ExperienceYears": rec.ExperienceYears,
		"Education":       rec.Education,
	} {
		if got != types.Unknown {
			t.Errorf("%s = %q, want %q", field, got, types.Unknown)
		}
	}
	if rec.Skills.Count() != 0 {
		t.Errorf("Skills.Count() = %d, want 0", rec.Skills.Count())
	}
	if len(rec.Projects) != 0 {
		t.Errorf("len(Projects) = %d, want 0", len(rec.Projects))
	}
	if len(rec.WorkExperience) != 0 {
		t.Errorf("len(WorkExperience) = %d, want 0", len(rec.WorkExperience))
	}
}

func TestParseProjectCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("项目经历：\n")
	for i := 1; i <= types.MaxProjects+1; i++ {
		b.WriteString("项目")
		b.WriteString(strings.Repeat("一", i))
		b.WriteString("：末日生存射击游戏的战斗系统开发工作\n")
	}
	rec := Parse(b.String(), zap.NewNop())
	if len(rec.Projects) != types.MaxProjects {
		t.Errorf("len(Projects) = %d, want %d", len(rec.Projects), types.MaxProjects)
	}
}

func TestSectionHeadingForms(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantBody bool
	}{
		{"bracketed", "【项目经历】\n做了一个游戏项目的完整开发", true},
		{"numbered", "一、项目经验\n内容行", true},
		{"english with inline text", "Projects: built stuff\nmore lines", true},
		{"markdown hash", "## Projects\nline", true},
		{"prose is not a heading", "Projects are my passion\n内容", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionLines(splitLines(tt.doc), projectHeadingRe)
			if (got != nil) != tt.wantBody {
				t.Errorf("sectionLines(%q) = %v, wantBody %v", tt.doc, got, tt.wantBody)
			}
		})
	}
}

func TestSectionStopsAtNextHeading(t *testing.T) {
	doc := "项目经历：\n项目内容第一行\n教育背景：\n清华大学"
	got := sectionLines(splitLines(doc), projectHeadingRe)
	want := []string{"项目内容第一行"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sectionLines() = %v, want %v", got, want)
	}
}

func TestSectionInlineRemainderBecomesBody(t *testing.T) {
	got := sectionLines(splitLines("Projects: built stuff\nmore lines"), projectHeadingRe)
	want := []string{"built stuff", "more lines"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sectionLines() = %v, want %v", got, want)
	}
}

func TestValidCandidateTitle(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"星际远征", true},
		{"Voxel Shooter", true},
		{"双字", false},
		{"负责整体架构设计", false},
		{"Implemented all systems", false},
		{"这是第一句。这是第二句。", false},
		{"2024-10-01", false},
		{strings.Repeat("长", 31), false},
	}
	for _, tt := range tests {
		if got := validCandidateTitle(tt.in); got != tt.want {
			t.Errorf("validCandidateTitle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"labeled beats first line", "个人简历\n姓名：李雷\n电话13800138000", "李雷"},
		{"first line fallback", "陈家明\n其他内容", "陈家明"},
		{"document header rejected", "个人简历\n电话13800138000", types.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractName(tt.doc, splitLines(tt.doc)); got != tt.want {
				t.Errorf("extractName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3年Unity开发经验", "3 years"},
		{"5+ years of game dev", "5 years"},
		{"应届毕业生", "fresh graduate"},
		{"正在实习", "intern"},
		{"没有相关信息", types.Unknown},
	}
	for _, tt := range tests {
		if got := extractExperience(tt.in); got != tt.want {
			t.Errorf("extractExperience(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetectSkillsDedup(t *testing.T) {
	got := DetectSkills("Unity unity Unity3D 项目，使用C#和c#")
	if want := []string{"Unity"}; !reflect.DeepEqual(got.Engines, want) {
		t.Errorf("Engines = %v, want %v", got.Engines, want)
	}
	if want := []string{"C#"}; !reflect.DeepEqual(got.Languages, want) {
		t.Errorf("Languages = %v, want %v", got.Languages, want)
	}
}

func TestDetectSkillsSubstringFalsePositive(t *testing.T) {
	// Case-sensitive substring scan: JavaScript text also matches the
	// Java synonym list. Frozen here so a dictionary change is noticed.
	got := DetectSkills("Expert in JavaScript development")
	want := []string{"Java", "JavaScript"}
	if !reflect.DeepEqual(got.Languages, want) {
		t.Errorf("Languages = %v, want %v", got.Languages, want)
	}
}

func TestBlockifyDiscardsShortBlocks(t *testing.T) {
	body := []string{
		"项目1：短",
		"项目2：这是一个足够长的项目描述内容超过二十个字符限制",
	}
	blocks := blockify(body)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1: %v", len(blocks), blocks)
	}
	if !strings.Contains(blocks[0], "项目2") {
		t.Errorf("blocks[0] = %q, want the long block", blocks[0])
	}
}
