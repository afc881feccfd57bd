/*
Package conf extends kingpin to provide:
- environment parsing with PARAMCOMP_ prefix,
- config dump in order of definition (instead of lexicographical order),
- ability to extract current values of registered flags,
- new types of flags e.g. SliceFlag,
- struct tag based flag registration,
- predefined flag for logging (logrus integration).
*/
package conf
