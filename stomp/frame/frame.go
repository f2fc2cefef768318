/*
The frame package contains constants associated with STOMP frames.

Keeping these constants in a separate package helps prevent the stomp
package from getting too busy, as none of these constants are needed
when calling the stomp package.
*/
package frame
