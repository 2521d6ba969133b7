package constant

// NoOverlap is returned by overlap queries when no navigation box reaches the destination
// Larger than any real height difference
const NoOverlap = 0x7FFFFFFF

// WallMarker is the sector floor/ceiling height that marks a solid column
const WallMarker = -127 * 256

// None marks an absent room, box, entity or camera index
const None = -1
