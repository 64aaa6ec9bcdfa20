package image

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Namespace is the repository path segment shared by every image we manage.
const Namespace = "devkit"

// ContentDigest hashes the Dockerfile bytes followed by each NAME=VALUE build
// arg pair, which must already be sorted. Because every value is itself the
// content-derived tag of a dependency, the digest commits to the whole
// dependency subtree.
func ContentDigest(dockerfilePath string, sortedArgPairs []string) (string, error) {
	hash := sha256.New()

	file, err := os.Open(dockerfilePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	for _, pair := range sortedArgPairs {
		hash.Write([]byte(pair))
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FormatTag builds the fully qualified tag for an image:
// {registry/}devkit/{name}:{arch}-{digest}. The registry segment is omitted
// entirely when no registry is configured.
func FormatTag(registry, arch, name, digest string) string {
	repo := Namespace + "/" + name
	suffix := arch + "-" + digest
	if registry != "" {
		return registry + "/" + repo + ":" + suffix
	}
	return repo + ":" + suffix
}
