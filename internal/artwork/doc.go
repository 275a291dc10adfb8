// Package artwork crops cover art to the fixed 16:9 band embedded into every
// produced track. The crop is derived once per source image and written to a
// fixed path, so repeated invocations against the same directory simply
// overwrite the previous result.
package artwork
