package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Cache keys are deterministic fingerprints of their semantic inputs,
// formatted as "seo:<kind>[:<discriminator>...]:<digest>". The prefix
// is part of the contract: callers assert on it to tell which cache a
// key belongs to. Hashing is exact-byte, no normalization, so two
// distinct inputs never collapse to one key.

const keyNamespace = "seo"

// ContentAnalysisKey returns the cache key for a content analysis.
func ContentAnalysisKey(content string) string {
	return keyNamespace + ":content:" + digest(content)
}

// HTMLParsingKey returns the cache key for a parsed HTML document.
func HTMLParsingKey(html string) string {
	return keyNamespace + ":html:" + digest(html)
}

// AIGenerationKey returns the cache key for an AI generation, keyed by
// prompt, model and provider.
func AIGenerationKey(prompt, model, provider string) string {
	return keyNamespace + ":ai:" + keySegment(provider) + ":" + keySegment(model) + ":" +
		digest(provider, model, prompt)
}

// ResultKey returns the cache key for a full analysis result, keyed by
// content and the serialized analyzer configuration.
func ResultKey(content, serializedConfig string) string {
	return keyNamespace + ":result:" + digest(content, serializedConfig)
}

// digest hashes its parts with SHA-256. Each part is length-prefixed
// so distinct part boundaries never produce the same digest.
func digest(parts ...string) string {
	h := sha256.New()
	var lenBuf [8]byte
	for _, part := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(part)))
		h.Write(lenBuf[:])
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// keySegment makes a value safe to embed as a literal key segment.
// The raw value still participates in the digest, so collapsing here
// cannot cause key collisions.
func keySegment(v string) string {
	if v == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == ':' || r == ' ' || r == '\n' || r == '\t':
			return '-'
		default:
			return r
		}
	}, v)
}
