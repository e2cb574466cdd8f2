package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// JobRole is a named career track that owns a set of skills.
type JobRole struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	Skills      []Skill `json:"skills,omitempty"`
}

// Skill is a competency tagged with a free-text category, owned by exactly
// one job role.
type Skill struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	JobRoleID int    `json:"job_role_id" db:"job_role_id"`
}

// UserSkill links a user to a skill. The table exists in the schema but no
// request path writes to it.
type UserSkill struct {
	UserID  int `json:"user_id" db:"user_id"`
	SkillID int `json:"skill_id" db:"skill_id"`
}

// SkillGroup is one category of skills with its skill names in order.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillGroups maps category to skill names while keeping categories in the
// order they were first seen. It encodes as a JSON object whose keys follow
// that order, which the job-roles page relies on for layout.
type SkillGroups []SkillGroup

// GroupSkills groups skills by category. Categories keep first-appearance
// order and skills keep input order within a category.
func GroupSkills(skills []Skill) SkillGroups {
	groups := SkillGroups{}
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill.Name)
	}
	return groups
}

// Get returns the skills of a category and whether the category exists.
func (g SkillGroups) Get(category string) ([]string, bool) {
	for _, group := range g {
		if group.Category == category {
			return group.Skills, true
		}
	}
	return nil, false
}

// Categories returns the category names in order.
func (g SkillGroups) Categories() []string {
	out := make([]string, 0, len(g))
	for _, group := range g {
		out = append(out, group.Category)
	}
	return out
}

func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		skills := group.Skills
		if skills == nil {
			skills = []string{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object into groups, preserving key order.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("skill groups must be a JSON object")
	}
	groups := SkillGroups{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return err
		}
		groups = append(groups, SkillGroup{Category: key, Skills: skills})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*g = groups
	return nil
}
