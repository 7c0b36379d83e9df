package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/m-mizutani/farrier/pkg/infra/trace"
	"github.com/m-mizutani/farrier/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const samplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.example</groupId>
    <artifactId>billing-service</artifactId>
    <version>0.4.1</version>

    <!-- versions pinned by the platform team -->
    <dependencies>
        <dependency>
            <groupId>org.springframework</groupId>
            <artifactId>spring-core</artifactId>
            <version>5.3.0</version>
        </dependency>
        <dependency>
            <groupId>org.springframework</groupId>
            <artifactId>spring-web</artifactId>
            <version>5.3.0</version>
        </dependency>
    </dependencies>
</project>
`

func writePom(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(content), 0o644))
	return dir
}

func readPom(t *testing.T, dir string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "pom.xml"))
	gt.NoError(t, err)
	return string(raw)
}

func TestUpdateVersion(t *testing.T) {
	dir := writePom(t, samplePom)

	uc := usecase.NewManifest()
	bump, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "5.3.20")
	gt.NoError(t, err)

	gt.Equal(t, bump.Artifact, "spring-core")
	gt.Equal(t, bump.OldVersion, "5.3.0")
	gt.Equal(t, bump.NewVersion, "5.3.20")
	gt.Equal(t, bump.Path, filepath.Join(dir, "pom.xml"))

	// The only change is the one version value: declaration, namespace,
	// comment and indentation all survive the rewrite.
	after := readPom(t, dir)
	want := strings.Replace(samplePom, "<version>5.3.0</version>", "<version>5.3.20</version>", 1)
	gt.Equal(t, after, want)
	gt.S(t, after).Contains(`<?xml version="1.0" encoding="UTF-8"?>`)
	gt.S(t, after).Contains("<!-- versions pinned by the platform team -->")
	gt.S(t, after).Contains(`xmlns="http://maven.apache.org/POM/4.0.0"`)
}

func TestUpdateVersionFirstMatchWins(t *testing.T) {
	pom := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <dependencies>
    <dependency>
      <groupId>com.example</groupId>
      <artifactId>acme-billing</artifactId>
      <version>1.0.0</version>
    </dependency>
    <dependency>
      <groupId>com.example.shaded</groupId>
      <artifactId>acme-billing</artifactId>
      <version>2.0.0</version>
    </dependency>
  </dependencies>
</project>
`
	dir := writePom(t, pom)

	uc := usecase.NewManifest()
	bump, err := uc.UpdateVersion(context.Background(), dir, "acme-billing", "9.9.9")
	gt.NoError(t, err)
	gt.Equal(t, bump.OldVersion, "1.0.0")

	after := readPom(t, dir)
	gt.Equal(t, strings.Count(after, "<version>9.9.9</version>"), 1)
	gt.Equal(t, strings.Count(after, "<version>2.0.0</version>"), 1)
	gt.False(t, strings.Contains(after, "<version>1.0.0</version>"))
}

func TestUpdateVersionSearchesWholeDocument(t *testing.T) {
	pom := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.springframework</groupId>
        <artifactId>spring-core</artifactId>
        <version>5.3.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
      <version>5.3.1</version>
    </dependency>
  </dependencies>
</project>
`
	dir := writePom(t, pom)

	uc := usecase.NewManifest()
	bump, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "6.0.0")
	gt.NoError(t, err)

	// Document order decides: the managed entry comes first.
	gt.Equal(t, bump.OldVersion, "5.3.0")

	after := readPom(t, dir)
	gt.S(t, after).Contains("<version>6.0.0</version>")
	gt.S(t, after).Contains("<version>5.3.1</version>")
}

func TestUpdateVersionManifestMissing(t *testing.T) {
	dir := t.TempDir()

	uc := usecase.NewManifest()
	_, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "6.0.0")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrManifestNotFound))
}

func TestUpdateVersionDependencyMissing(t *testing.T) {
	dir := writePom(t, samplePom)

	uc := usecase.NewManifest()
	_, err := uc.UpdateVersion(context.Background(), dir, "no-such-artifact", "1.0.0")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrDependencyNotFound))

	// A failed lookup must leave the file untouched.
	gt.Equal(t, readPom(t, dir), samplePom)
}

func TestUpdateVersionVersionMissing(t *testing.T) {
	pom := `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
    </dependency>
  </dependencies>
</project>
`
	dir := writePom(t, pom)

	uc := usecase.NewManifest()
	_, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "6.0.0")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrVersionMissing))
	gt.Equal(t, readPom(t, dir), pom)
}

func TestUpdateVersionMalformed(t *testing.T) {
	dir := writePom(t, "<project><dependency></project>")

	uc := usecase.NewManifest()
	_, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "6.0.0")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrMalformedManifest))
}

func TestUpdateVersionTraceRecorded(t *testing.T) {
	dir := writePom(t, samplePom)
	sink := trace.NewMemory()

	uc := usecase.NewManifest(usecase.WithManifestTraceSink(sink))
	_, err := uc.UpdateVersion(context.Background(), dir, "spring-core", "5.3.20")
	gt.NoError(t, err)

	recs := sink.ManifestTraces()
	gt.A(t, recs).Length(1)
	gt.Equal(t, recs[0].Artifact, "spring-core")
	gt.Equal(t, recs[0].OldVersion, "5.3.0")
	gt.Equal(t, recs[0].NewVersion, "5.3.20")
	gt.S(t, recs[0].Before).Contains("<version>5.3.0</version>")
	gt.S(t, recs[0].After).Contains("<version>5.3.20</version>")
}
