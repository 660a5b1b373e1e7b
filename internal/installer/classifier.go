package installer

import (
	"strings"

	"velo/internal/config"
)

// Libraries, runtimes and build tools that are rarely installed on purpose.
// This is a heuristic; a wrong answer only decides whether missing
// command links are reported.
var knownDependencies = toSet(
	// System libraries
	"openssl", "openssl@3", "zlib", "bzip2", "xz", "lz4", "zstd",

	// Language runtimes pulled in by other formulae
	"python@3.11", "python@3.12", "python@3.13", "node@18", "node@20",

	// Build tools and libraries
	"cmake", "autoconf", "automake", "libtool", "pkg-config", "pkgconf",
	"gettext", "readline", "ncurses", "sqlite", "gdbm",

	// Graphics and media
	"jpeg-turbo", "libpng", "libtiff", "giflib", "webp", "freetype",
	"fontconfig", "cairo", "pixman", "fribidi", "harfbuzz", "pango",
	"glib", "gobject-introspection", "graphite2", "little-cms2",

	// Compression
	"brotli", "lzma", "libdeflate", "snappy",

	// Audio and video
	"lame", "mpg123", "speex", "opus", "flac", "ogg", "vorbis",
	"x264", "x265", "aom", "dav1d", "rav1e", "svt-av1", "libvpx",
	"libtheora", "libvorbis", "libogg", "libsndfile", "rubberband",

	// Network and security
	"gnutls", "nettle", "libtasn1", "p11-kit",
	"ca-certificates", "libevent", "libnghttp2", "c-ares",
	"libidn2", "libpsl", "libssh2",

	// Archives
	"libarchive", "unrar", "p7zip", "libzip",

	// Development libraries
	"pcre", "pcre2", "icu4c", "boost", "protobuf", "yaml-cpp",
	"json-c", "jansson", "rapidjson",

	// Image processing
	"imagemagick", "vips", "opencv", "tesseract", "leptonica",
	"openjpeg", "jpeg-xl", "libjxl", "openexr", "imath",

	// Multimedia frameworks
	"sdl2", "allegro", "sfml", "glfw",

	// Databases
	"postgresql", "mysql", "sqlite3", "redis", "mongodb",

	// Crypto and hashing
	"libgcrypt", "libgpg-error", "argon2", "bcrypt",

	// XML
	"libxml2", "libxslt", "pugixml", "tinyxml2",

	// Filesystems
	"ossp-uuid", "e2fsprogs", "ntfs-3g",

	// Compilers
	"gcc", "llvm", "clang", "binutils", "nasm", "yasm",

	// Misc media dependencies
	"libbluray", "zeromq", "srt", "librist", "libvmaf", "mbedtls",
)

// Base names whose versioned variants (name@version) are treated as dependencies.
var versionedDependencyBases = toSet(
	"python", "node", "ruby", "go", "rust", "java", "perl",
	"php", "openssl", "mysql", "postgresql", "redis",
)

func toSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// IsLikelyDependency reports whether name looks like a package that was
// pulled in by something else rather than requested by the user.
func IsLikelyDependency(name string) bool {
	if _, ok := knownDependencies[name]; ok {
		return true
	}

	base, _, versioned := strings.Cut(name, "@")
	if !versioned {
		return false
	}
	_, ok := versionedDependencyBases[base]
	return ok
}

// Classifier is IsLikelyDependency with user overrides layered on top.
type Classifier struct {
	forceDependency map[string]struct{}
	forceUser       map[string]struct{}
}

func NewClassifier(overrides config.DependencyOverrides) *Classifier {
	return &Classifier{
		forceDependency: toSet(overrides.ForceDependency...),
		forceUser:       toSet(overrides.ForceUser...),
	}
}

func (c *Classifier) IsLikelyDependency(name string) bool {
	if c != nil {
		if _, ok := c.forceUser[name]; ok {
			return false
		}
		if _, ok := c.forceDependency[name]; ok {
			return true
		}
	}
	return IsLikelyDependency(name)
}
