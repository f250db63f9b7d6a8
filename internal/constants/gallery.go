package constants

// Logical resolution every click coordinate is reported in
const (
	LogicalWidth  = 1920
	LogicalHeight = 1080
)

// PlaceholderImageURL seeds the gallery so the first page load is not empty
const PlaceholderImageURL = "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?auto=format&fit=crop&w=1200&q=80"

// User-facing messages
const (
	LoadFailedMessage   = "Failed to load image. Check URL or try another image."
	CopiedMessagePrefix = "Copied: "
)
