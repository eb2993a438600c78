// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/inkshim/inkshim/pkg/device"
)

// BuildPropPath is where Android keeps the system build properties.
const BuildPropPath = "/system/build.prop"

// Build property keys read by IdentityFromProps.
const (
	PropBrand        = "ro.product.brand"
	PropModel        = "ro.product.model"
	PropDisplay      = "ro.build.display.id"
	PropManufacturer = "ro.product.manufacturer"
	PropDevice       = "ro.product.device"
	PropIncremental  = "ro.build.version.incremental"
	PropSDK          = "ro.build.version.sdk"
)

// Identity describes the host as seen by device classification.
type Identity struct {
	device.Signature

	// SDKVersion is the Android API level, or NonAndroidSDK off Android.
	SDKVersion int `json:"sdk_version"`
}

// ParseBuildProps parses the key=value format of an Android build.prop file.
// Blank lines, lines starting with '#' and lines without '=' (such as
// "import /vendor/build.prop") are skipped. Later keys override earlier ones.
func ParseBuildProps(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read build properties: %w", err)
	}
	return props, nil
}

// IdentityFromProps maps build properties onto an Identity. Missing keys
// leave the corresponding field empty; an absent or unparsable SDK level is 0.
func IdentityFromProps(props map[string]string) Identity {
	sdk, err := strconv.Atoi(props[PropSDK])
	if err != nil {
		sdk = 0
	}
	return Identity{
		Signature: device.Signature{
			Brand:            props[PropBrand],
			Model:            props[PropModel],
			Display:          props[PropDisplay],
			Manufacturer:     props[PropManufacturer],
			Device:           props[PropDevice],
			VersionIncrement: props[PropIncremental],
		},
		SDKVersion: sdk,
	}
}

// IdentityFromHostInfo describes a non-Android host.
func IdentityFromHostInfo(info *host.InfoStat) Identity {
	return Identity{
		Signature: device.Signature{
			Brand:            info.Platform,
			Model:            info.OS,
			Display:          info.KernelVersion,
			Manufacturer:     info.PlatformFamily,
			Device:           info.Hostname,
			VersionIncrement: info.PlatformVersion,
		},
		SDKVersion: NonAndroidSDK,
	}
}

// HostIdentity returns the identity of the running host.
func HostIdentity(ctx context.Context) (Identity, error) {
	return hostIdentityFrom(ctx, openBuildProps, host.InfoWithContext)
}

// hostIdentityFrom prefers Android build properties and falls back to the
// generic host description when they cannot be opened or read. Accepting
// the lookups as parameters lets tests run without touching the real system.
func hostIdentityFrom(
	ctx context.Context,
	openProps func() (io.ReadCloser, error),
	hostInfo func(context.Context) (*host.InfoStat, error),
) (Identity, error) {
	if props, err := readBuildProps(openProps); err == nil {
		return IdentityFromProps(props), nil
	}

	info, err := hostInfo(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("query host info: %w", err)
	}
	return IdentityFromHostInfo(info), nil
}

func readBuildProps(openProps func() (io.ReadCloser, error)) (map[string]string, error) {
	rc, err := openProps()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ParseBuildProps(rc)
}

// openBuildProps is the production adapter for the openProps parameter of
// hostIdentityFrom.
func openBuildProps() (io.ReadCloser, error) {
	return os.Open(BuildPropPath)
}
