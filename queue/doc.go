/*
Package queue defines the tasks to be performed to grow a tree, one per
branch waiting to be developed, and the Queue that holds them while the
tree is grown.
*/
package queue
