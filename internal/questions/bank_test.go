// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseBank(t *testing.T) {
	src := `# Unity

## Beginner

1. What is the difference between Update and FixedUpdate in practice?
2. Short.
3. Explain prefabs and why instantiating
   them at runtime has a cost.

## Intermediate

1. How does the Addressables system differ from Resources.Load?

## Unknown Section

1. This item sits under an unrecognized header and must be dropped.
`
	b := parseBank("unity", []byte(src))

	assert.Equal(t, "Unity", b.Title)
	assert.Equal(t, []string{
		"What is the difference between Update and FixedUpdate in practice?",
		"Explain prefabs and why instantiating them at runtime has a cost.",
	}, b.Questions(TierBasic))
	assert.Len(t, b.Questions(TierIntermediate), 1)
	assert.Equal(t, 3, b.Size())
}

func TestParseBankChineseHeaders(t *testing.T) {
	src := `# 网络编程

## 初级

1. 请解释TCP和UDP的区别以及各自适用的场景。

## 中级

1. 客户端预测与服务器回滚是如何配合工作的？

## 高级

1. 帧同步不同步问题出现时你会如何定位和修复？

## 项目深挖

1. 请完整讲一次你实现的玩家输入从采集到远端表现的全过程。
`
	b := parseBank("network", []byte(src))

	for _, tier := range tierOrder {
		assert.Len(t, b.Questions(tier), 1, "tier %s", tier)
	}
}

func TestParseBankNumberingVariants(t *testing.T) {
	src := `# Mixed

## Advanced

1. First item uses a western dot for numbering here.
2、 Second item uses the Chinese enumeration comma.
3） Third item uses a fullwidth closing parenthesis.
`
	b := parseBank("mixed", []byte(src))
	assert.Len(t, b.Questions(TierAdvanced), 3)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	banks, degraded := Load("", zap.NewNop())
	require.False(t, degraded)

	wantDims := []string{
		"unity", "csharp", "cpp", "datastructure", "designpattern",
		"network", "graphics", "optimization", "ai", "ui", "general",
	}
	for _, dim := range wantDims {
		b := banks[dim]
		require.NotNil(t, b, "embedded bank %q missing", dim)
		for _, tier := range tierOrder {
			assert.NotEmpty(t, b.Questions(tier), "bank %q tier %s", dim, tier)
		}
	}
}

func TestLoadDirOverride(t *testing.T) {
	dir := t.TempDir()
	src := `# Custom

## Beginner

1. A custom question from the override directory, long enough to keep.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.md"), []byte(src), 0o644))

	banks, degraded := Load(dir, zap.NewNop())
	require.False(t, degraded)
	require.Len(t, banks, 1)
	require.NotNil(t, banks["custom"])
	assert.Equal(t, 1, banks["custom"].Size())
}

func TestLoadBadDirFallsBack(t *testing.T) {
	banks, degraded := Load(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	require.True(t, degraded)

	general := banks["general"]
	require.NotNil(t, general, "fallback set has no general bank")
	for _, tier := range tierOrder {
		assert.NotEmpty(t, general.Questions(tier), "fallback tier %s", tier)
	}
}

func TestFallbackQuestionsClearMinLength(t *testing.T) {
	for dim, b := range fallbackBanks() {
		for tier, qs := range b.ByTier {
			for _, q := range qs {
				assert.GreaterOrEqual(t, len([]rune(q)), minQuestionLen,
					"fallback %s/%s question too short: %q", dim, tier, q)
			}
		}
	}
}
