package installer

const (
	// ReceiptFileName is written into every keg by the installer.
	ReceiptFileName = "INSTALL_RECEIPT.json"

	KegBinDirName = "bin"
)

const (
	CheckExistence = "existence"
	CheckReceipt   = "receipt"
	CheckSymlinks  = "symlinks"
)

const (
	REASON_NOT_A_DIRECTORY   = "keg %s is not a directory"
	REASON_RECEIPT_MISSING   = "missing %s"
	REASON_RECEIPT_INVALID   = "invalid %s: %v"
	REASON_RECEIPT_MISMATCH  = "receipt describes %s %s"
	REASON_SYMLINK_MISSING   = "missing symlink for %s in %s"
	REASON_SYMLINK_BROKEN    = "broken symlink %s"
	REASON_SYMLINK_FOREIGN   = "%s points outside the package (%s)"
	REASON_SYMLINK_NOT_LINK  = "%s is not a symlink managed by velo"
	REASON_NOT_INSTALLED_MSG = "Not properly installed"
)
