package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap cost for tests that only care about behavior, not hardness
var testParams = Params{Memory: 8 * 1024, Time: 1, Threads: 1}

func TestHashAndVerify(t *testing.T) {
	digest, err := HashWithParams("hunter2", testParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	assert.True(t, Verify(digest, "hunter2"))
	assert.False(t, Verify(digest, "hunter3"))
	assert.False(t, Verify(digest, ""))
}

func TestHash_DefaultParamsEncoded(t *testing.T) {
	digest, err := Hash("pw")
	require.NoError(t, err)
	assert.Contains(t, digest, "$m=65536,t=3,p=4$")
	assert.True(t, Verify(digest, "pw"))
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	a, err := HashWithParams("same", testParams)
	require.NoError(t, err)
	b, err := HashWithParams("same", testParams)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerify_MalformedDigestIsFalse(t *testing.T) {
	good, err := HashWithParams("pw", testParams)
	require.NoError(t, err)

	cases := []string{
		"",
		"plaintext",
		"$argon2id$",
		"$bcrypt$v=19$m=8192,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=18$m=8192,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=abc,t=1,p=1$AAAA$BBBB",
		"$argon2id$v=19$m=8192,t=1,p=1$!notb64$BBBB",
		"$argon2id$v=19$m=8192,t=1,p=1$AAAA$!notb64",
		"$argon2id$v=19$m=0,t=0,p=0$AAAA$BBBB",
		strings.TrimSuffix(good, good[len(good)-4:]) + "$$",
	}
	for _, digest := range cases {
		assert.False(t, Verify(digest, "pw"), "digest %q", digest)
	}
}

func TestVerify_TamperedKeyIsFalse(t *testing.T) {
	digest, err := HashWithParams("pw", testParams)
	require.NoError(t, err)

	// flip the final character of the encoded key
	last := digest[len(digest)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	assert.False(t, Verify(digest[:len(digest)-1]+string(flip), "pw"))
}
