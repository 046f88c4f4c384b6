package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName_KnownVariants(t *testing.T) {
	assert.Equal(t, "Go", NormalizeSkillName("golang"))
	assert.Equal(t, "JavaScript", NormalizeSkillName("js"))
	assert.Equal(t, "Kubernetes", NormalizeSkillName("K8S"))
	assert.Equal(t, "Node.js", NormalizeSkillName("nodejs"))
	assert.Equal(t, "PostgreSQL", NormalizeSkillName("Postgres"))
}

func TestNormalizeSkillName_MixedCasePreserved(t *testing.T) {
	assert.Equal(t, "GraphQL", NormalizeSkillName("GraphQL"))
	assert.Equal(t, "PyTorch", NormalizeSkillName("PyTorch"))
}

func TestNormalizeSkillName_LowercaseWordCapitalized(t *testing.T) {
	assert.Equal(t, "Terraform", NormalizeSkillName("terraform"))
	assert.Equal(t, "Rust", NormalizeSkillName("rust"))
}

func TestNormalizeSkillName_MultiWordLowercaseUnchanged(t *testing.T) {
	assert.Equal(t, "unit testing", NormalizeSkillName("unit testing"))
}

func TestNormalizeSkillName_Whitespace(t *testing.T) {
	assert.Equal(t, "Go", NormalizeSkillName("  golang  "))
	assert.Equal(t, "", NormalizeSkillName("   "))
}
