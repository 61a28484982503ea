package metaspec

import (
	"maps"
	"slices"
)

// licenses is the fixed allow-list of recognized license identifiers. The
// value is the canonical license URL where one exists; the catch-all
// entries (open_source, restricted, unrestricted, unknown) have none.
var licenses = map[string]string{
	"agpl_3":      "http://www.gnu.org/licenses/agpl-3.0.html",
	"apache_1_1":  "http://www.apache.org/licenses/LICENSE-1.1",
	"apache_2_0":  "http://www.apache.org/licenses/LICENSE-2.0",
	"artistic_1":  "http://opensource.org/licenses/artistic-license.php",
	"artistic_2":  "http://opensource.org/licenses/artistic-license-2.0.php",
	"bsd":         "http://opensource.org/licenses/bsd-license.php",
	"freebsd":     "http://www.freebsd.org/copyright/freebsd-license.html",
	"gfdl_1_2":    "http://www.gnu.org/licenses/old-licenses/fdl-1.2.html",
	"gfdl_1_3":    "http://www.gnu.org/licenses/fdl-1.3.html",
	"gpl_1":       "http://www.gnu.org/licenses/old-licenses/gpl-1.0.html",
	"gpl_2":       "http://www.gnu.org/licenses/old-licenses/gpl-2.0.html",
	"gpl_3":       "http://www.gnu.org/licenses/gpl-3.0.html",
	"lgpl_2_1":    "http://www.gnu.org/licenses/old-licenses/lgpl-2.1.html",
	"lgpl_3_0":    "http://www.gnu.org/licenses/lgpl-3.0.html",
	"mit":         "http://www.opensource.org/licenses/mit-license.php",
	"mozilla_1_0": "http://www.mozilla.org/MPL/MPL-1.0.html",
	"mozilla_1_1": "http://www.mozilla.org/MPL/MPL-1.1.html",
	"openssl":     "http://www.openssl.org/source/license.html",
	"perl_5":      "http://dev.perl.org/licenses/",
	"postgresql":  "http://www.postgresql.org/about/licence",
	"qpl_1_0":     "http://opensource.org/licenses/QPL-1.0",
	"ssleay":      "http://www.openssl.org/source/license.html",
	"sun":         "http://www.openoffice.org/licenses/sissl_license.html",
	"zlib":        "http://www.zlib.net/zlib_license.html",

	"open_source":  "",
	"restricted":   "",
	"unrestricted": "",
	"unknown":      "",
}

// IsLicense reports whether name is in the license allow-list.
func IsLicense(name string) bool {
	_, ok := licenses[name]
	return ok
}

// LicenseURL returns the canonical URL for a recognized license. The
// second result is false for unrecognized names; the URL itself may be
// empty for catch-all identifiers.
func LicenseURL(name string) (string, bool) {
	u, ok := licenses[name]
	return u, ok
}

// Licenses lists the recognized license identifiers, sorted.
func Licenses() []string {
	return slices.Sorted(maps.Keys(licenses))
}
