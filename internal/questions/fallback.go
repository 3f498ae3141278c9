// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

// fallbackBanks is the last-resort pool used when neither an explicit
// bank directory nor the embedded defaults can be read. It keeps the
// generator functional with a single general bank.
func fallbackBanks() map[string]*Bank {
	return map[string]*Bank{
		"general": {
			Dimension: "general",
			Title:     "General Engineering",
			ByTier: map[Tier][]string{
				TierBasic: {
					"Walk through a recent project: your role, the team size, and what you personally built.",
					"Describe your daily development workflow from picking up a task to merging the change.",
					"How do you debug a problem you have never seen before? Walk through your first steps.",
				},
				TierIntermediate: {
					"Describe the hardest bug you have fixed: the symptom, the diagnosis, and the fix.",
					"How do you decide what to test in code where much of the behavior is visual or interactive?",
					"Explain a technical decision you made that you later reversed, and what signal told you it was wrong.",
				},
				TierAdvanced: {
					"Design the branch, test, and release process for a team shipping weekly without regressions reaching users.",
					"How do you approach a performance, stability, or correctness tradeoff near a deadline?",
				},
				TierDeepDive: {
					"Walk me through the project you are proudest of: your contribution, the hardest obstacle, and what you would change now.",
					"Describe a production incident you owned end to end: detection, communication, fix, and prevention.",
				},
			},
		},
	}
}
