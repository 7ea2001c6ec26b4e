package rules

// BuildRulesJSONSchema returns the JSON-Schema every rules document must satisfy.
func BuildRulesJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"staff_codes", "default_staff", "registry", "reference_markers",
			"external_labels", "deadline", "senders", "keywords", "domain_staff", "placeholders",
		},
		"properties": map[string]any{
			"staff_codes":   map[string]any{"type": "array", "minItems": 1, "uniqueItems": true, "items": codeProp()},
			"default_staff": map[string]any{"type": "string", "minLength": 1},
			"registry": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"case_reference", "staff_code"},
				"properties": map[string]any{
					"case_reference":    nonEmpty(),
					"staff_code":        nonEmpty(),
					"short_designation": map[string]any{"type": "string"},
					"opponent":          map[string]any{"type": "string"},
				},
			},
			"reference_markers": phraseList(),
			"external_labels":   phraseList(),
			"deadline": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"keyword", "label"},
				"properties": map[string]any{
					"keyword": nonEmpty(),
					"label":   nonEmpty(),
				},
			},
			"senders": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"court", "authority", "insurer"},
				"properties": map[string]any{
					"court":     phraseList(),
					"authority": phraseList(),
					"insurer":   phraseList(),
				},
			},
			"keywords": phraseList(),
			"domain_staff": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"domain", "staff", "keywords"},
					"properties": map[string]any{
						"domain":   nonEmpty(),
						"staff":    codeProp(),
						"keywords": phraseList(),
					},
				},
			},
			"placeholders": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"reference", "name", "date", "keyword"},
				"properties": map[string]any{
					"reference":    nonEmpty(),
					"name":         nonEmpty(),
					"date":         nonEmpty(),
					"keyword":      nonEmpty(),
					"name_max_len": map[string]any{"type": "integer", "minimum": 1, "maximum": 120},
				},
			},
		},
	}
}

func nonEmpty() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func codeProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^[A-ZÄÖÜ]{1,4}$`}
}

func phraseList() map[string]any {
	return map[string]any{"type": "array", "minItems": 1, "items": nonEmpty()}
}
