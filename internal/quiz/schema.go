package quiz

import "github.com/abhisek/readiq/internal/llm"

// ScoringSchema defines the structured payload expected from the final
// scoring call. Ranges mirror the pillar maximums.
var ScoringSchema = &llm.Schema{
	Name:        "readiness-scoring",
	Description: "Per-pillar scores and overall readiness for one interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"numeracy": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 10,
				"description": "Numeracy score out of 10",
			},
			"reading": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 5,
				"description": "Reading comprehension score out of 5",
			},
			"computer": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 10,
				"description": "Computer literacy score out of 10",
			},
			"logic": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 8,
				"description": "Logical reasoning score out of 8",
			},
			"communication": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 5,
				"description": "Communication score out of 5",
			},
			"mindset": map[string]any{
				"type": "integer", "minimum": 0, "maximum": 7,
				"description": "Growth mindset score out of 7",
			},
			"readiness_level": map[string]any{
				"type": "integer", "minimum": 1, "maximum": 5,
				"description": "Overall readiness, 1 strongest to 5 weakest",
			},
		},
		"required": []any{
			"numeracy", "reading", "computer", "logic",
			"communication", "mindset", "readiness_level",
		},
		"additionalProperties": false,
	},
}
