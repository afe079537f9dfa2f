// Package geometry turns a physical page description and a depth scale into
// the fixed frame every borehole log page is laid out in.
//
// [Calculate] validates a [Config] and derives the log-area length, the depth
// span of one page and the absolute column offsets:
//
//	geo, err := geometry.Calculate(geometry.DefaultConfig())
//	if err != nil {
//	    // *geometry.ConfigurationError
//	}
//	fmt.Println(geo.DepthPerPage) // metres per page at 1:50 on A4
//
// All lengths are millimetres; depths are metres.
package geometry
