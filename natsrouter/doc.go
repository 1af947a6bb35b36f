// Package natsrouter adapts the routing engine to a NATS connection.
//
// Router sits in front of a Publisher (satisfied by *nats.Conn) and
// applies the permission store and translator to every outbound
// subject. It never delivers messages itself; it decides whether an
// operation may proceed and which wire subject it lands on, then
// hands the stamped message to the connection.
package natsrouter
