package util

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bcrypt is deliberately slow, keep the run count low
// bcrypt 故意设计得很慢，保持较低的运行次数
func propParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 10
	return params
}

func TestPasswordHash_VerifyRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(propParameters())

	properties.Property("hash then verify succeeds", prop.ForAll(
		func(password string) bool {
			hash, err := GeneratePasswordHash(password)
			if err != nil {
				return false
			}
			return CheckPasswordHash(hash, password)
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 64 }),
	))

	properties.Property("verify fails for a different password", prop.ForAll(
		func(p1, p2 string) bool {
			if p1 == p2 {
				return true
			}
			hash, err := GeneratePasswordHash(p1)
			if err != nil {
				return false
			}
			return !CheckPasswordHash(hash, p2)
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 64 }),
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 64 }),
	))

	properties.TestingRun(t)
}

func TestPasswordHash_SaltIsRandom(t *testing.T) {
	const password = "secret123"

	hash1, err := GeneratePasswordHash(password)
	require.NoError(t, err)
	hash2, err := GeneratePasswordHash(password)
	require.NoError(t, err)

	// Same plaintext must produce distinct digests, both verifiable
	// 相同明文必须生成不同的摘要，且都能验证通过
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, CheckPasswordHash(hash1, password))
	assert.True(t, CheckPasswordHash(hash2, password))
}

func TestPasswordHash_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("", "secret123"))
	assert.False(t, CheckPasswordHash("not-a-bcrypt-digest", "secret123"))
	assert.False(t, CheckPasswordHash("$2a$10$tooshort", "secret123"))
}
