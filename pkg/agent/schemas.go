package agent

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

// Raw output schemas, one per agent. All objects are closed
// (additionalProperties: false) so unrecognized fields and variants are
// rejected rather than silently dropped.
var schemaSources = map[models.AgentType]string{
	models.AgentPlanner: `{
		"type": "object",
		"additionalProperties": false,
		"required": ["definitionOfDone", "plan", "targetFiles", "estimatedComplexity"],
		"properties": {
			"definitionOfDone": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"plan": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"targetFiles": {"type": "array", "items": {"type": "string"}},
			"estimatedComplexity": {"enum": ["XS", "S", "M", "L", "XL"]},
			"estimatedEffort": {"type": "string"},
			"shouldBreakdown": {"type": "boolean"}
		}
	}`,

	models.AgentCoder:
	// The fixer shares the coder's contract.
	`{
		"type": "object",
		"additionalProperties": false,
		"required": ["diff", "commitMessage", "filesModified"],
		"properties": {
			"diff": {"type": "string", "minLength": 1},
			"commitMessage": {"type": "string", "minLength": 1},
			"filesModified": {"type": "array", "items": {"type": "string"}, "minItems": 1}
		}
	}`,

	models.AgentValidator: `{
		"type": "object",
		"additionalProperties": false,
		"required": ["verdict", "checks"],
		"properties": {
			"verdict": {"enum": ["VALID", "INVALID"]},
			"checks": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"required": ["type", "passed"],
					"properties": {
						"type": {"enum": ["syntax", "lint", "type", "test", "diff"]},
						"passed": {"type": "boolean"},
						"details": {"type": "string"}
					}
				}
			},
			"feedback": {"type": "array", "items": {"type": "string"}}
		}
	}`,

	models.AgentReviewer: `{
		"type": "object",
		"additionalProperties": false,
		"required": ["verdict", "summary", "dodVerification", "comments"],
		"properties": {
			"verdict": {"enum": ["APPROVE", "REQUEST_CHANGES", "NEEDS_DISCUSSION"]},
			"summary": {"type": "string"},
			"dodVerification": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"required": ["item", "satisfied"],
					"properties": {
						"item": {"type": "string"},
						"satisfied": {"type": "boolean"},
						"note": {"type": "string"}
					}
				}
			},
			"comments": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"required": ["file", "line", "severity", "comment"],
					"properties": {
						"file": {"type": "string"},
						"line": {"type": "integer", "minimum": 0},
						"severity": {"enum": ["critical", "major", "minor", "suggestion"]},
						"comment": {"type": "string"}
					}
				}
			},
			"suggestedChanges": {"type": "array", "items": {"type": "string"}}
		}
	}`,

	models.AgentBreakdown: `{
		"type": "object",
		"additionalProperties": false,
		"required": ["shouldBreakdown"],
		"properties": {
			"shouldBreakdown": {"type": "boolean"},
			"issues": {
				"type": "array",
				"items": {
					"type": "object",
					"additionalProperties": false,
					"required": ["title", "body", "targetFiles", "changeType"],
					"properties": {
						"title": {"type": "string", "minLength": 1},
						"body": {"type": "string"},
						"targetFiles": {"type": "array", "items": {"type": "string"}, "minItems": 1},
						"changeType": {"enum": ["create", "modify", "delete"]},
						"dependencies": {"type": "array", "items": {"type": "string"}},
						"estimatedLines": {"type": "integer", "minimum": 0},
						"acceptanceCriteria": {"type": "array", "items": {"type": "string"}}
					}
				}
			},
			"dependencyGraph": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"nodes": {"type": "array", "items": {"type": "string"}},
					"edges": {
						"type": "array",
						"items": {
							"type": "object",
							"additionalProperties": false,
							"required": ["from", "to"],
							"properties": {
								"from": {"type": "string"},
								"to": {"type": "string"}
							}
						}
					}
				}
			},
			"executionPlan": {"type": "array", "items": {"type": "string"}}
		}
	}`,
}

// compileSchemas compiles every agent schema once at runtime startup.
// The fixer reuses the coder's schema.
func compileSchemas() (map[models.AgentType]*jsonschema.Schema, error) {
	compiled := make(map[models.AgentType]*jsonschema.Schema, len(schemaSources)+1)
	for agent, source := range schemaSources {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
		if err != nil {
			return nil, fmt.Errorf("unmarshal %s schema: %w", agent, err)
		}
		c := jsonschema.NewCompiler()
		url := string(agent) + ".schema.json"
		if err := c.AddResource(url, doc); err != nil {
			return nil, fmt.Errorf("add %s schema resource: %w", agent, err)
		}
		schema, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", agent, err)
		}
		compiled[agent] = schema
	}
	compiled[models.AgentFixer] = compiled[models.AgentCoder]
	return compiled, nil
}
