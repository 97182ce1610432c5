package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// maxDownload caps a single release asset.
const maxDownload = 64 << 20

// Stage names one step of an install.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageUnpack   Stage = "unpack"
	StageInstall  Stage = "install"
)

// Step is reported as an install moves through its stages.
type Step struct {
	Stage   Stage
	Message string
}

// InstallInput says which release to install over the running binary.
type InstallInput struct {
	// Current is the running version; development builds are refused.
	Current string
	// Target is a release tag. Empty means the latest release.
	Target string
}

// asset is the release archive built for one platform.
type asset struct {
	name   string
	binary string
	zipped bool
}

// assetFor names the archive the release pipeline publishes for tag on
// goos/goarch: sabdam_<version>_<os>_<arch>.tar.gz, or .zip on Windows.
func assetFor(tag, goos, goarch string) (asset, error) {
	switch goarch {
	case "amd64", "arm64":
	default:
		return asset{}, fmt.Errorf("no sabdam release for architecture %s", goarch)
	}
	version := strings.TrimPrefix(tag, "v")
	base := fmt.Sprintf("sabdam_%s_%s_%s", version, goos, goarch)
	switch goos {
	case "darwin", "linux":
		return asset{name: base + ".tar.gz", binary: "sabdam"}, nil
	case "windows":
		return asset{name: base + ".zip", binary: "sabdam.exe", zipped: true}, nil
	}
	return asset{}, fmt.Errorf("no sabdam release for %s", goos)
}

// checksumsName is the checksum manifest published next to the archives.
func checksumsName(tag string) string {
	return fmt.Sprintf("sabdam_%s_checksums.txt", strings.TrimPrefix(tag, "v"))
}

// Install downloads a release, checks it against the published
// checksums and swaps it in for the running executable. It returns the
// tag that was installed. report may be nil.
func (c *Checker) Install(ctx context.Context, in InstallInput, report func(Step)) (string, error) {
	if report == nil {
		report = func(Step) {}
	}
	if in.Current == "" || in.Current == "(devel)" {
		return "", ErrDevBuild
	}

	tag := in.Target
	if tag == "" {
		report(Step{StageCheck, "Looking up the latest release..."})
		res, err := c.Check(ctx, &CheckInput{Version: in.Current})
		if err != nil {
			return "", fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return "", ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	a, err := assetFor(tag, runtime.GOOS, c.goarch)
	if err != nil {
		return "", err
	}
	log := c.log.WithFields(logrus.Fields{"tag": tag, "asset": a.name})

	report(Step{StageDownload, fmt.Sprintf("Downloading sabdam %s...", tag)})
	archive, err := c.fetch(ctx, c.releaseURL(tag, a.name))
	if err != nil {
		return "", fmt.Errorf("download %s: %w", a.name, err)
	}
	log.WithField("bytes", len(archive)).Debug("archive downloaded")

	report(Step{StageVerify, "Checking the download..."})
	sums, err := c.fetch(ctx, c.releaseURL(tag, checksumsName(tag)))
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(sums, a.name)
	if err != nil {
		return "", err
	}
	if got := sha256Hex(archive); got != want {
		return "", fmt.Errorf("%w: %s has sha256 %s, release lists %s", ErrChecksum, a.name, got, want)
	}

	report(Step{StageUnpack, "Unpacking..."})
	bin, err := unpack(a, archive)
	if err != nil {
		return "", fmt.Errorf("unpack %s: %w", a.name, err)
	}

	report(Step{StageInstall, "Installing..."})
	exe, err := c.execPath()
	if err != nil {
		return "", fmt.Errorf("locate running binary: %w", err)
	}
	if err := replaceExecutable(exe, bin); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{"from": in.Current, "path": exe}).Info("sabdam updated")
	return tag, nil
}

func (c *Checker) releaseURL(tag, file string) string {
	return strings.TrimRight(c.downloadBaseURL, "/") + "/" +
		path.Join(c.owner, c.repo, "releases", "download", tag, file)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDownload {
		return nil, fmt.Errorf("GET %s: larger than %d MiB", url, maxDownload>>20)
	}
	return data, nil
}

// checksumFor finds name in a sha256sum-style manifest. A leading '*'
// on the file name (binary mode) is accepted.
func checksumFor(manifest []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(manifest))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		if strings.TrimPrefix(fields[1], "*") == name {
			return strings.ToLower(fields[0]), nil
		}
	}
	return "", fmt.Errorf("%w: %s is not listed in the release checksums", ErrChecksum, name)
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// unpack pulls the sabdam binary out of a release archive. The binary
// may sit in a top-level directory.
func unpack(a asset, archive []byte) ([]byte, error) {
	if a.zipped {
		zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
		if err != nil {
			return nil, err
		}
		for _, f := range zr.File {
			if f.FileInfo().IsDir() || path.Base(f.Name) != a.binary {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(io.LimitReader(rc, maxDownload))
		}
		return nil, fmt.Errorf("%s not in archive", a.binary)
	}

	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s not in archive", a.binary)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == a.binary {
			return io.ReadAll(io.LimitReader(tr, maxDownload))
		}
	}
}

// replaceExecutable writes bin next to exe and renames it into place so
// the swap is atomic on the same filesystem. exe keeps its permissions.
func replaceExecutable(exe string, bin []byte) error {
	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("stat %s: %w", exe, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(exe), ".sabdam-update-*")
	if err != nil {
		return fmt.Errorf("stage update: %w", err)
	}
	staged := tmp.Name()
	defer func() { _ = os.Remove(staged) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage update: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("stage update: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stage update: %w", err)
	}
	if err := os.Chmod(staged, info.Mode().Perm()); err != nil {
		return fmt.Errorf("stage update: %w", err)
	}
	if err := os.Rename(staged, exe); err != nil {
		return fmt.Errorf("replace %s: %w", exe, err)
	}
	return nil
}
